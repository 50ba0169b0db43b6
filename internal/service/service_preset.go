package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/store"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
	"github.com/MKhiriev/go-pass-gen/models"
)

type presetService struct {
	presetRepository store.PresetRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewPresetService(presetRepository store.PresetRepository, validator validators.Validator, logger *logger.Logger) PresetService {
	return &presetService{
		presetRepository: presetRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (p *presetService) SavePreset(ctx context.Context, name string, cfg models.GenerationConfig) (models.Preset, error) {
	preset := models.Preset{Name: name, Config: cfg}
	if err := p.validator.Validate(ctx, preset); err != nil {
		return models.Preset{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := p.presetRepository.SavePreset(ctx, preset)
	if err != nil {
		if errors.Is(err, store.ErrPresetNotSaved) {
			return models.Preset{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.Preset{}, fmt.Errorf("error saving preset %q: %w", name, err)
	}

	return saved, nil
}

func (p *presetService) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	if err := validators.ValidatePresetName(name); err != nil {
		return models.Preset{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	preset, err := p.presetRepository.GetPreset(ctx, name)
	if err != nil {
		return models.Preset{}, p.mapStoreError(name, err)
	}

	return preset, nil
}

func (p *presetService) ListPresets(ctx context.Context) ([]models.Preset, error) {
	presets, err := p.presetRepository.ListPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing presets: %w", err)
	}

	return presets, nil
}

func (p *presetService) DeletePreset(ctx context.Context, name string) error {
	if err := validators.ValidatePresetName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := p.presetRepository.DeletePreset(ctx, name); err != nil {
		return p.mapStoreError(name, err)
	}

	return nil
}

func (p *presetService) mapStoreError(name string, err error) error {
	if errors.Is(err, store.ErrPresetNotFound) {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return fmt.Errorf("preset %q: %w", name, err)
}
