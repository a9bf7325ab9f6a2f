package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"gridfacts/internal/domain"
)

// JSONExporter renders the aggregate as indented JSON.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Format returns the exporter format identifier.
func (e *JSONExporter) Format() string {
	return "json"
}

// Export writes the aggregate as JSON.
func (e *JSONExporter) Export(facts *domain.ClusterFacts, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(facts); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
