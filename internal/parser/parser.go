package parser

import "strings"

// HostResolver derives the FQDN for a VIP or SCAN name. Implementations
// return the input unchanged when resolution is not possible.
type HostResolver func(name string) string

// cutLabel strips a literal label prefix from a line and returns the trimmed
// remainder. Label matching is exact; the remainder may be empty.
func cutLabel(line, label string) (string, bool) {
	rest, ok := strings.CutPrefix(line, label)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
