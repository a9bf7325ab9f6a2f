package parser

import "strings"

// Endpoints splits an endpoint spec of the form "TCP:1521/TCPS:1522" into a
// mapping of lower-cased protocol to port string. Tokens without a colon are
// ignored.
func Endpoints(spec string) map[string]string {
	out := make(map[string]string)
	for _, token := range strings.Split(spec, "/") {
		proto, port, ok := strings.Cut(token, ":")
		if !ok || proto == "" {
			continue
		}
		out[strings.ToLower(proto)] = port
	}
	return out
}
