package collector

import (
	"os"
	"path/filepath"
	"strings"

	"gridfacts/internal/domain"
)

// Grid Infrastructure daemons whose running binary betrays the home path.
var giDaemons = map[string]bool{
	"ocssd.bin": true,
	"crsd.bin":  true,
	"ohasd.bin": true,
	"evmd.bin":  true,
}

// ResolveHome determines the Grid Infrastructure home. Resolution order:
// the explicit value, $ORACLE_HOME, the +ASM entry in /etc/oratab, then the
// binary path of a running GI daemon. Collection cannot proceed without a
// home, so failure is a PreconditionError.
func ResolveHome(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if home := os.Getenv("ORACLE_HOME"); home != "" {
		return home, nil
	}
	if home := homeFromOratab("/etc/oratab"); home != "" {
		return home, nil
	}
	if home := homeFromProcesses("/proc"); home != "" {
		return home, nil
	}
	return "", &domain.PreconditionError{
		Reason: "could not find Grid Infrastructure home: not configured, ORACLE_HOME unset, no +ASM oratab entry, no running GI daemon",
	}
}

// homeFromOratab returns the home of the first +ASM entry in an oratab file.
// Entry format: SID:home:startup_flag
func homeFromOratab(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 2 {
			continue
		}
		if strings.HasPrefix(fields[0], "+ASM") && fields[1] != "" {
			return fields[1]
		}
	}
	return ""
}

// homeFromProcesses scans running processes for a GI daemon and derives the
// home from its binary path (<home>/bin/<daemon>).
func homeFromProcesses(procRoot string) string {
	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if !entry.IsDir() || !isNumeric(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(procRoot, entry.Name(), "cmdline"))
		if err != nil || len(data) == 0 {
			continue
		}
		// cmdline is NUL-separated; argv[0] is the binary path.
		exe, _, _ := strings.Cut(string(data), "\x00")
		if !giDaemons[filepath.Base(exe)] {
			continue
		}
		bin := filepath.Dir(exe)
		if filepath.Base(bin) == "bin" {
			return filepath.Dir(bin)
		}
	}
	return ""
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
