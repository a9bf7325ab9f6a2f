package parser

import (
	"regexp"
	"strings"

	"gridfacts/internal/domain"
)

// Format: "srvctl status listener" prints one status line per listener, e.g.
// "Listener LISTENER is enabled". Disabled listeners are skipped.
var reListenerEnabled = regexp.MustCompile(`Listener (.+) is enabled`)

// EnabledListeners extracts the names of enabled listeners from status
// output, preserving output order.
func EnabledListeners(lines []string) []string {
	var names []string
	for _, line := range lines {
		if !strings.Contains(line, "is enabled") {
			continue
		}
		if m := reListenerEnabled.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}

// ListenerConfig parses "srvctl config listener -l <name>" output into a
// single listener record. The "Network:" value is cut at the first comma
// (the remainder is the owner/ACL part, e.g. "Network: 1, Owner: oracle").
func ListenerConfig(lines []string) domain.Listener {
	var l domain.Listener
	for _, line := range lines {
		if v, ok := cutLabel(line, "Name:"); ok {
			l.Name = v
		} else if v, ok := cutLabel(line, "Type:"); ok {
			l.Type = v
		} else if v, ok := cutLabel(line, "Network:"); ok {
			if i := strings.Index(v, ","); i >= 0 {
				v = strings.TrimSpace(v[:i])
			}
			l.NetworkID = v
		} else if v, ok := cutLabel(line, "End points:"); ok {
			l.Endpoints = v
			l.ProtocolPorts = Endpoints(v)
		}
	}
	return l
}
