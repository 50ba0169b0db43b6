package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/store"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
)

type Services struct {
	GeneratorService GeneratorService
	StrengthService  StrengthService
	BreachService    BreachService
	ExportService    ExportService
	PresetService    PresetService
	AppInfoService   AppInfoService

	Validator validators.Validator
}

// NewServices wires every service on top of the preset storage and the breach
// range adapter. Generation is guarded by the validation decorator.
func NewServices(storages *store.Storages, breachAdapter adapter.BreachRangeAdapter, app config.App, limits config.Generator, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(app, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewGenerationValidator(limits)
	strengthSvc := NewStrengthService()

	generatorSvc := NewGeneratorService(crypto.NewRandomSource(), strengthSvc, logger)
	generatorSvc = NewGeneratorValidationService(validator).Wrap(generatorSvc)

	return &Services{
		GeneratorService: generatorSvc,
		StrengthService:  strengthSvc,
		BreachService:    NewBreachService(breachAdapter, logger),
		ExportService:    NewExportService(crypto.NewSealer(), validator, logger),
		PresetService:    NewPresetService(storages.PresetRepository, validator, logger),
		AppInfoService:   appInfo,
		Validator:        validator,
	}, nil
}
