package parser

import "regexp"

// The SCAN listener endpoint line changed format across releases. Matchers
// are tried in order per line; the first hit wins. Adding a future format is
// a pure append here.
type endpointFormat struct {
	re    *regexp.Regexp
	group int
}

var scanListenerFormats = []endpointFormat{
	// 19c: "Endpoints: TCP:1521"
	{re: regexp.MustCompile(`Endpoints: (.+)`), group: 1},
	// 12c/18c: "SCAN Listener LISTENER_SCAN1 exists. Port: TCP:1521"
	{re: regexp.MustCompile(`SCAN Listener (.+) exists. Port: (.+)`), group: 2},
}

// ScanListenerEndpoints scans "srvctl config scan_listener -k <id>" output
// for the endpoint spec, trying each known line format in order. It returns
// the first spec found, stopping at the first matching line.
func ScanListenerEndpoints(lines []string) (string, bool) {
	for _, line := range lines {
		for _, f := range scanListenerFormats {
			if m := f.re.FindStringSubmatch(line); m != nil {
				return m[f.group], true
			}
		}
	}
	return "", false
}
