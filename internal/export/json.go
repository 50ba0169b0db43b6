package export

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-gen/models"
)

type jsonExporter struct{}

func (jsonExporter) Export(secrets []string) ([]byte, error) {
	return json.MarshalIndent(Records(secrets), "", "  ")
}

// Parse returns the passwords in array order; ids are informational.
func (jsonExporter) Parse(data []byte) ([]string, error) {
	var records []models.ExportRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return passwords(records), nil
}

func (jsonExporter) FileExtension() string { return "json" }

func (jsonExporter) MimeType() string { return "application/json" }

type jsonFlatExporter struct{}

func (jsonFlatExporter) Export(secrets []string) ([]byte, error) {
	if secrets == nil {
		secrets = []string{}
	}
	return json.MarshalIndent(secrets, "", "  ")
}

func (jsonFlatExporter) Parse(data []byte) ([]string, error) {
	secrets := []string{}
	if err := json.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return secrets, nil
}

func (jsonFlatExporter) FileExtension() string { return "json" }

func (jsonFlatExporter) MimeType() string { return "application/json" }
