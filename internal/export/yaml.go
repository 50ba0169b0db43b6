package export

import (
	"fmt"

	"github.com/MKhiriev/go-pass-gen/models"
	"gopkg.in/yaml.v3"
)

type yamlExporter struct{}

func (yamlExporter) Export(secrets []string) ([]byte, error) {
	return yaml.Marshal(Records(secrets))
}

func (yamlExporter) Parse(data []byte) ([]string, error) {
	var records []models.ExportRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return passwords(records), nil
}

func (yamlExporter) FileExtension() string { return "yaml" }

func (yamlExporter) MimeType() string { return "application/yaml" }
