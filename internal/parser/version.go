package parser

import "regexp"

// Format: crsctl prints the version as a trailing bracket group, e.g.
// "Oracle High Availability Services release version on the local node is [19.0.0.0.0]".
var reBracketVersion = regexp.MustCompile(`\[([0-9.]+)\]$`)

// BracketVersion extracts the dotted version token from the trailing bracket
// group of a crsctl query line. ok is false when the line carries no such
// group; callers then keep the raw line, since an unrecognized version string
// must never fail the whole run.
func BracketVersion(line string) (version string, ok bool) {
	m := reBracketVersion.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
