package parser

import (
	"regexp"

	"gridfacts/internal/domain"
)

// Format: "VIP exists: network number 1, hosting node rac01" opens a record;
// "VIP Name:" / "VIP IPv4 Address:" / "VIP IPv6 Address:" lines fill it.
var reVIPNetwork = regexp.MustCompile(`network number ([0-9]+),`)

// VIPs parses "srvctl config vip -n <node>" output into a mapping keyed by
// network identifier. source names the command for error reporting.
//
// A "VIP exists:" line without an extractable network number is a
// MalformedRecordError: the opener is the only place the record's join key
// appears, so nothing after it could be attributed correctly.
func VIPs(lines []string, source string, resolve HostResolver) (map[string]domain.VIP, error) {
	out := make(map[string]domain.VIP)
	var cur domain.VIP

	flush := func() {
		if cur.NetworkID != "" {
			out[cur.NetworkID] = cur
		}
	}

	for _, line := range lines {
		if _, ok := cutLabel(line, "VIP exists:"); ok {
			m := reVIPNetwork.FindStringSubmatch(line)
			if m == nil {
				return nil, &domain.MalformedRecordError{Command: source, Line: line}
			}
			flush()
			cur = domain.VIP{NetworkID: m[1]}
		} else if v, ok := cutLabel(line, "VIP Name:"); ok {
			cur.Name = v
			cur.FQDN = resolve(v)
		} else if v, ok := cutLabel(line, "VIP IPv4 Address:"); ok {
			cur.IPv4 = v
		} else if v, ok := cutLabel(line, "VIP IPv6 Address:"); ok {
			cur.IPv6 = v
		}
	}
	flush()

	return out, nil
}
