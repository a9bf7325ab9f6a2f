package collector

import (
	"fmt"
	"os"
	"path/filepath"

	"gridfacts/internal/domain"
)

// Tools holds the derived administrative tool paths under one Grid
// Infrastructure home.
type Tools struct {
	Home     string
	Srvctl   string
	Crsctl   string
	Cemutlo  string
	Olsnodes string
}

// ToolsFromHome derives the tool paths under home/bin.
func ToolsFromHome(home string) Tools {
	bin := func(name string) string { return filepath.Join(home, "bin", name) }
	return Tools{
		Home:     home,
		Srvctl:   bin("srvctl"),
		Crsctl:   bin("crsctl"),
		Cemutlo:  bin("cemutlo"),
		Olsnodes: bin("olsnodes"),
	}
}

// Verify checks that every derived tool path is an executable file. Only
// meaningful when the tools run on the local host.
func (t Tools) Verify() error {
	for _, path := range []string{t.Srvctl, t.Crsctl, t.Cemutlo, t.Olsnodes} {
		if err := checkExecutable(path); err != nil {
			return &domain.PreconditionError{Reason: err.Error()}
		}
	}
	return nil
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("tool %s not found: %v", path, err)
	}
	if info.IsDir() || info.Mode()&0o111 == 0 {
		return fmt.Errorf("tool %s is not an executable file", path)
	}
	return nil
}
