package export

import (
	"bytes"
	"fmt"
	"strings"
)

type textExporter struct{}

func (textExporter) Export(secrets []string) ([]byte, error) {
	var buf bytes.Buffer
	for i, secret := range secrets {
		if strings.ContainsRune(secret, '\n') {
			return nil, fmt.Errorf("%w: secret %d contains a line break", ErrUnrepresentable, i+1)
		}
		buf.WriteString(secret)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (textExporter) Parse(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}

	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func (textExporter) FileExtension() string { return "txt" }

func (textExporter) MimeType() string { return "text/plain; charset=utf-8" }
