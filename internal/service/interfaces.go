// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/models"
)

// GeneratorService produces secrets for a generation config together with
// the strength assessment of that config.
type GeneratorService interface {
	Generate(ctx context.Context, cfg models.GenerationConfig) (models.GenerationResult, error)
}

// GeneratorServiceWrapper defines middleware composition for GeneratorService.
// Implementations wrap an existing GeneratorService to add behavior such as
// validating.
type GeneratorServiceWrapper interface {
	Wrap(GeneratorService) GeneratorService // returns a decorated GeneratorService applying additional behavior
}

// StrengthService estimates how hard a secret is to guess.
type StrengthService interface {
	// Assess evaluates the config that will produce secrets.
	Assess(ctx context.Context, cfg models.GenerationConfig) models.StrengthAssessment
	// AssessSecret evaluates a secret of unknown origin by the character
	// classes it uses.
	AssessSecret(ctx context.Context, secret string) models.StrengthAssessment
}

// BreachService looks secrets up in the breach corpus without revealing them.
type BreachService interface {
	// Check never fails: lookup errors are logged and reported as zero
	// occurrences.
	Check(ctx context.Context, secret string) models.BreachResult
}

// ExportService renders secrets into downloadable files and reads them back.
type ExportService interface {
	Export(ctx context.Context, format models.ExportFormat, secrets []string, passphrase string) (models.ExportedFile, error)
	Import(ctx context.Context, format models.ExportFormat, data []byte, passphrase string) ([]string, error)
}

// PresetService manages named generation configs.
type PresetService interface {
	SavePreset(ctx context.Context, name string, cfg models.GenerationConfig) (models.Preset, error)
	GetPreset(ctx context.Context, name string) (models.Preset, error)
	ListPresets(ctx context.Context) ([]models.Preset, error)
	DeletePreset(ctx context.Context, name string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
