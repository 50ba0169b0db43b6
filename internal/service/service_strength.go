package service

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/internal/strength"
	"github.com/MKhiriev/go-pass-gen/models"
)

type strengthService struct{}

func NewStrengthService() StrengthService {
	return strengthService{}
}

func (strengthService) Assess(_ context.Context, cfg models.GenerationConfig) models.StrengthAssessment {
	return strength.Evaluate(cfg)
}

func (strengthService) AssessSecret(_ context.Context, secret string) models.StrengthAssessment {
	return strength.AssessSecret(secret)
}
