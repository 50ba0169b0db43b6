package http

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

type mockGeneratorService struct {
	generateFn func(ctx context.Context, cfg models.GenerationConfig) (models.GenerationResult, error)
}

func (m *mockGeneratorService) Generate(ctx context.Context, cfg models.GenerationConfig) (models.GenerationResult, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, cfg)
	}
	return models.GenerationResult{Secrets: []string{}}, nil
}

type mockStrengthService struct {
	assessFn       func(ctx context.Context, cfg models.GenerationConfig) models.StrengthAssessment
	assessSecretFn func(ctx context.Context, secret string) models.StrengthAssessment
}

func (m *mockStrengthService) Assess(ctx context.Context, cfg models.GenerationConfig) models.StrengthAssessment {
	if m.assessFn != nil {
		return m.assessFn(ctx, cfg)
	}
	return models.StrengthAssessment{}
}

func (m *mockStrengthService) AssessSecret(ctx context.Context, secret string) models.StrengthAssessment {
	if m.assessSecretFn != nil {
		return m.assessSecretFn(ctx, secret)
	}
	return models.StrengthAssessment{}
}

type mockBreachService struct {
	checkFn func(ctx context.Context, secret string) models.BreachResult
}

func (m *mockBreachService) Check(ctx context.Context, secret string) models.BreachResult {
	if m.checkFn != nil {
		return m.checkFn(ctx, secret)
	}
	return models.BreachResult{Checked: true}
}

type mockExportService struct {
	exportFn func(ctx context.Context, format models.ExportFormat, secrets []string, passphrase string) (models.ExportedFile, error)
	importFn func(ctx context.Context, format models.ExportFormat, data []byte, passphrase string) ([]string, error)
}

func (m *mockExportService) Export(ctx context.Context, format models.ExportFormat, secrets []string, passphrase string) (models.ExportedFile, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, format, secrets, passphrase)
	}
	return models.ExportedFile{}, nil
}

func (m *mockExportService) Import(ctx context.Context, format models.ExportFormat, data []byte, passphrase string) ([]string, error) {
	if m.importFn != nil {
		return m.importFn(ctx, format, data, passphrase)
	}
	return nil, nil
}

type mockPresetService struct {
	saveFn   func(ctx context.Context, name string, cfg models.GenerationConfig) (models.Preset, error)
	getFn    func(ctx context.Context, name string) (models.Preset, error)
	listFn   func(ctx context.Context) ([]models.Preset, error)
	deleteFn func(ctx context.Context, name string) error
}

func (m *mockPresetService) SavePreset(ctx context.Context, name string, cfg models.GenerationConfig) (models.Preset, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, name, cfg)
	}
	return models.Preset{Name: name, Config: cfg}, nil
}

func (m *mockPresetService) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	if m.getFn != nil {
		return m.getFn(ctx, name)
	}
	return models.Preset{Name: name}, nil
}

func (m *mockPresetService) ListPresets(ctx context.Context) ([]models.Preset, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Preset{}, nil
}

func (m *mockPresetService) DeletePreset(ctx context.Context, name string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, name)
	}
	return nil
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockValidator struct {
	validateFn func(ctx context.Context, obj any, fields ...string) error
}

func (m *mockValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if m.validateFn != nil {
		return m.validateFn(ctx, obj, fields...)
	}
	return nil
}
