// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
)

type breachService struct {
	rangeAdapter adapter.BreachRangeAdapter

	logger *logger.Logger
}

func NewBreachService(rangeAdapter adapter.BreachRangeAdapter, logger *logger.Logger) BreachService {
	return &breachService{
		rangeAdapter: rangeAdapter,
		logger:       logger,
	}
}

// Check hashes secret with SHA-1 and sends only the first five hex characters
// of the digest. The remaining 35 are matched locally against the returned
// range.
func (b *breachService) Check(ctx context.Context, secret string) models.BreachResult {
	if secret == "" {
		return models.BreachResult{}
	}

	prefix, suffix := utils.SplitHash(utils.HashString(secret))

	suffixes, err := b.rangeAdapter.Range(ctx, prefix)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "breachService.Check").
			Str("prefix", prefix).
			Msg("breach range lookup failed, reporting zero occurrences")
		return models.BreachResult{Checked: true}
	}

	count := suffixes[suffix]
	if count < 0 {
		count = 0
	}

	return models.BreachResult{OccurrenceCount: count, Checked: true}
}
