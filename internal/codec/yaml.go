package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gridfacts/internal/domain"
)

// YAMLExporter renders the aggregate as YAML.
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAML exporter.
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Format returns the exporter format identifier.
func (e *YAMLExporter) Format() string {
	return "yaml"
}

// Export writes the aggregate as YAML.
func (e *YAMLExporter) Export(facts *domain.ClusterFacts, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if err := encoder.Encode(facts); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
