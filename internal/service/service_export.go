package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/export"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
	"github.com/MKhiriev/go-pass-gen/models"
)

const (
	sealedExtension = ".sealed"
	sealedMimeType  = "application/octet-stream"
)

type exportService struct {
	sealer    crypto.Sealer
	validator validators.Validator

	logger *logger.Logger
}

func NewExportService(sealer crypto.Sealer, validator validators.Validator, logger *logger.Logger) ExportService {
	return &exportService{
		sealer:    sealer,
		validator: validator,
		logger:    logger,
	}
}

// Export renders secrets in format. With a non-empty passphrase the rendered
// payload is sealed and served as an opaque binary file.
func (e *exportService) Export(ctx context.Context, format models.ExportFormat, secrets []string, passphrase string) (models.ExportedFile, error) {
	request := models.ExportRequest{Format: format, Passwords: secrets, Passphrase: passphrase}
	if err := e.validator.Validate(ctx, request); err != nil {
		if errors.Is(err, validators.ErrInvalidExportFormat) {
			return models.ExportedFile{}, fmt.Errorf("%w: %q", ErrUnknownExportFormat, format)
		}
		return models.ExportedFile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exporter, err := export.New(format)
	if err != nil {
		return models.ExportedFile{}, fmt.Errorf("%w: %w", ErrUnknownExportFormat, err)
	}

	data, err := exporter.Export(secrets)
	if err != nil {
		if errors.Is(err, export.ErrUnrepresentable) {
			return models.ExportedFile{}, fmt.Errorf("%w: %w", ErrUnrepresentable, err)
		}
		return models.ExportedFile{}, fmt.Errorf("error rendering %s export: %w", format, err)
	}

	file := models.ExportedFile{
		Name:     export.FileName(exporter),
		MimeType: exporter.MimeType(),
		Data:     data,
	}

	if passphrase != "" {
		sealed, err := e.sealer.Seal(data, passphrase)
		if err != nil {
			return models.ExportedFile{}, fmt.Errorf("error sealing export: %w", err)
		}
		file.Name += sealedExtension
		file.MimeType = sealedMimeType
		file.Sealed = true
		file.Data = sealed
	}

	logger.FromContext(ctx).Debug().
		Str("func", "exportService.Export").
		Str("format", string(format)).
		Int("count", len(secrets)).
		Bool("sealed", file.Sealed).
		Msg("export rendered")

	return file, nil
}

// Import reverses Export. Sealed data requires the passphrase it was sealed
// with; plain data ignores the passphrase.
func (e *exportService) Import(ctx context.Context, format models.ExportFormat, data []byte, passphrase string) ([]string, error) {
	exporter, err := export.New(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownExportFormat, err)
	}

	if e.sealer.IsSealed(data) {
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		data, err = e.sealer.Open(data, passphrase)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "exportService.Import").
				Msg("could not open sealed export")
			return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
		}
	}

	secrets, err := exporter.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}

	return secrets, nil
}
