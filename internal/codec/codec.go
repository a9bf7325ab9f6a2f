package codec

import (
	"fmt"
	"io"

	"gridfacts/internal/domain"
)

// Exporter renders a collected aggregate to an output stream.
type Exporter interface {
	Export(facts *domain.ClusterFacts, w io.Writer) error
	Format() string
}

// ForFormat returns the exporter for a format identifier.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "json", "":
		return NewJSONExporter(), nil
	case "yaml":
		return NewYAMLExporter(), nil
	case "ansible":
		return NewAnsibleExporter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
