// Package export renders lists of generated secrets into downloadable files
// and parses them back. Every format keeps the order of the secrets and
// round-trips them without loss.
package export

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-gen/models"
)

var (
	// ErrUnknownFormat is returned by [New] for a format it does not know.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrUnrepresentable is returned when a secret cannot be written in the
	// chosen format without changing it on the way back.
	ErrUnrepresentable = errors.New("secret cannot be represented in this format")
	// ErrMalformed is returned by Parse when the input is not a valid file of
	// the exporter's format.
	ErrMalformed = errors.New("malformed export data")
)

// Exporter converts secrets to and from one file format.
type Exporter interface {
	Export(secrets []string) ([]byte, error)
	Parse(data []byte) ([]string, error)
	FileExtension() string
	MimeType() string
}

// New returns the exporter for format.
func New(format models.ExportFormat) (Exporter, error) {
	switch format {
	case models.ExportText:
		return textExporter{}, nil
	case models.ExportCSV:
		return csvExporter{}, nil
	case models.ExportJSON:
		return jsonExporter{}, nil
	case models.ExportJSONFlat:
		return jsonFlatExporter{}, nil
	case models.ExportYAML:
		return yamlExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FileName is the suggested download name for an export in format.
func FileName(e Exporter) string {
	return "passwords." + e.FileExtension()
}

// Records numbers secrets from 1 in their original order.
func Records(secrets []string) []models.ExportRecord {
	records := make([]models.ExportRecord, len(secrets))
	for i, secret := range secrets {
		records[i] = models.ExportRecord{ID: i + 1, Password: secret}
	}
	return records
}

func passwords(records []models.ExportRecord) []string {
	secrets := make([]string, len(records))
	for i, record := range records {
		secrets[i] = record.Password
	}
	return secrets
}
