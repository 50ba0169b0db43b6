package store

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PresetRepository persists named generation configs.
type PresetRepository interface {
	// SavePreset inserts the preset or replaces the config of an existing one
	// with the same name. CreatedAt is kept on replace; the stored timestamps
	// are returned.
	SavePreset(ctx context.Context, preset models.Preset) (models.Preset, error)
	// GetPreset returns [ErrPresetNotFound] when no preset has that name.
	GetPreset(ctx context.Context, name string) (models.Preset, error)
	// ListPresets returns all presets ordered by name.
	ListPresets(ctx context.Context) ([]models.Preset, error)
	// DeletePreset returns [ErrPresetNotFound] when no preset has that name.
	DeletePreset(ctx context.Context, name string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
