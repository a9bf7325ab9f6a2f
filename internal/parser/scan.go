package parser

import (
	"regexp"
	"strings"

	"gridfacts/internal/domain"
)

// Format: "SCAN name: rac-scan, Network: 1" opens a record; each
// "SCAN 1 IPv4 VIP: 192.168.1.20" line appends one address. A SCAN commonly
// carries several addresses of the same family (round-robin DNS).
var (
	reScanName = regexp.MustCompile(`SCAN name: (.+), Network: ([0-9]+)`)
	reScanVIP  = regexp.MustCompile(`SCAN [0-9]+ (IPv[46]) VIP: (.+)`)
)

// SCANs parses "srvctl config scan -all" output into a mapping keyed by
// network identifier. Address order follows the input.
func SCANs(lines []string, resolve HostResolver) map[string]domain.SCAN {
	out := make(map[string]domain.SCAN)
	var cur domain.SCAN

	flush := func() {
		if cur.NetworkID != "" {
			out[cur.NetworkID] = cur
		}
	}

	for _, line := range lines {
		if m := reScanName.FindStringSubmatch(line); m != nil {
			flush()
			cur = domain.SCAN{NetworkID: m[2], Name: m[1], FQDN: resolve(m[1])}
		} else if m := reScanVIP.FindStringSubmatch(line); m != nil {
			switch strings.ToLower(m[1]) {
			case "ipv4":
				cur.IPv4 = append(cur.IPv4, m[2])
			case "ipv6":
				cur.IPv6 = append(cur.IPv6, m[2])
			}
		}
	}
	flush()

	return out
}
