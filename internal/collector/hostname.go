package collector

import (
	"net"
	"os"
	"strings"
)

// ShortHostname returns the local host name cut at the first dot.
func ShortHostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	short, _, _ := strings.Cut(name, ".")
	return short
}

// HostnameToFQDN derives the FQDN for a VIP or SCAN name. A name that
// already contains a dot is used as-is; otherwise the name is resolved
// forward and the first address resolved back to its canonical name. Any
// lookup failure falls back to the bare name.
func HostnameToFQDN(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	addrs, err := net.LookupHost(name)
	if err != nil || len(addrs) == 0 {
		return name
	}
	names, err := net.LookupAddr(addrs[0])
	if err != nil || len(names) == 0 {
		return name
	}
	return strings.TrimSuffix(names[0], ".")
}
