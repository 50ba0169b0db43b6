package models

// ExportFormat names a bulk export encoding.
type ExportFormat string

const (
	ExportText     ExportFormat = "text"
	ExportCSV      ExportFormat = "csv"
	ExportJSON     ExportFormat = "json"
	ExportJSONFlat ExportFormat = "json-flat"
	ExportYAML     ExportFormat = "yaml"
)

// ExportFormats lists the supported formats.
var ExportFormats = []ExportFormat{ExportText, ExportCSV, ExportJSON, ExportJSONFlat, ExportYAML}

// ExportRecord is one exported secret together with its 1-based position.
type ExportRecord struct {
	ID       int    `json:"id" yaml:"id"`
	Password string `json:"password" yaml:"password"`
}

// ExportedFile is a rendered export ready to be written or served.
type ExportedFile struct {
	Name     string
	MimeType string
	Sealed   bool
	Data     []byte
}
