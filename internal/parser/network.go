package parser

import (
	"regexp"

	"gridfacts/internal/domain"
)

// Format: "Network 1 exists" opens a record; "Subnet IPv4:" / "Subnet IPv6:"
// lines fill it. Example (19c):
//
//	Network 1 exists
//	Subnet IPv4: 192.168.1.0/255.255.255.0/eth0, static
//	Subnet IPv6:
var reNetworkExists = regexp.MustCompile(`Network ([0-9]+) exists`)

// Networks parses "srvctl config network" output into a mapping keyed by
// network identifier. Unknown lines are ignored; no output means an empty
// mapping, never an error.
func Networks(lines []string) map[string]domain.Network {
	out := make(map[string]domain.Network)
	var cur domain.Network

	flush := func() {
		if cur.ID != "" {
			out[cur.ID] = cur
		}
	}

	for _, line := range lines {
		if m := reNetworkExists.FindStringSubmatch(line); m != nil {
			flush()
			cur = domain.Network{ID: m[1]}
		} else if v, ok := cutLabel(line, "Subnet IPv4:"); ok {
			cur.SubnetIPv4 = v
		} else if v, ok := cutLabel(line, "Subnet IPv6:"); ok {
			cur.SubnetIPv6 = v
		}
	}
	flush()

	return out
}
