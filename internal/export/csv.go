package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

var csvHeader = []string{"id", "password"}

type csvExporter struct{}

// Export writes an id,password header followed by one row per secret.
// Secrets containing "\r\n" are rejected since the csv reader folds it to "\n".
func (csvExporter) Export(secrets []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i, secret := range secrets {
		if strings.Contains(secret, "\r\n") {
			return nil, fmt.Errorf("%w: secret %d contains CRLF", ErrUnrepresentable, i+1)
		}
		if err := w.Write([]string{strconv.Itoa(i + 1), secret}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (csvExporter) Parse(data []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(csvHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(rows) == 0 || rows[0][0] != csvHeader[0] || rows[0][1] != csvHeader[1] {
		return nil, fmt.Errorf("%w: missing id,password header", ErrMalformed)
	}

	secrets := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		secrets = append(secrets, row[1])
	}
	return secrets, nil
}

func (csvExporter) FileExtension() string { return "csv" }

func (csvExporter) MimeType() string { return "text/csv" }
