package service

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/generator"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/models"
)

type generatorService struct {
	source   crypto.SecureRandomSource
	strength StrengthService

	logger *logger.Logger
}

// NewGeneratorService returns a GeneratorService drawing from source. The
// config is expected to be validated already; see
// NewGeneratorValidationService.
func NewGeneratorService(source crypto.SecureRandomSource, strength StrengthService, logger *logger.Logger) GeneratorService {
	return &generatorService{
		source:   source,
		strength: strength,
		logger:   logger,
	}
}

func (g *generatorService) Generate(ctx context.Context, cfg models.GenerationConfig) (models.GenerationResult, error) {
	secrets := generator.Generate(cfg, g.source)
	if secrets == nil {
		secrets = []string{}
	}

	logger.FromContext(ctx).Debug().
		Str("func", "generatorService.Generate").
		Str("mode", string(cfg.Mode)).
		Int("count", len(secrets)).
		Msg("secrets generated")

	return models.GenerationResult{
		Secrets:    secrets,
		Assessment: g.strength.Assess(ctx, cfg),
	}, nil
}
