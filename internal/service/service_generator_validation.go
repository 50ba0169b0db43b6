package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-gen/internal/validators"
	"github.com/MKhiriev/go-pass-gen/models"
)

type GeneratorValidationService struct {
	inner     GeneratorService
	validator validators.Validator
}

func NewGeneratorValidationService(validator validators.Validator) GeneratorServiceWrapper {
	return &GeneratorValidationService{
		validator: validator,
	}
}

func (v *GeneratorValidationService) Generate(ctx context.Context, cfg models.GenerationConfig) (models.GenerationResult, error) {
	if err := v.validator.Validate(ctx, cfg); err != nil {
		return models.GenerationResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Generate(ctx, cfg)
}

func (v *GeneratorValidationService) Wrap(wrapped GeneratorService) GeneratorService {
	v.inner = wrapped
	return v
}
