// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package strength estimates how hard a generated secret is to brute force:
// entropy bits, a qualitative tier and a human readable crack time.
package strength

import (
	"math"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-gen/internal/generator"
	"github.com/MKhiriev/go-pass-gen/models"
)

// Tier thresholds, inclusive lower bounds in bits.
const (
	MediumThreshold     = 40
	StrongThreshold     = 60
	VeryStrongThreshold = 80
)

// Evaluate returns the assessment of the configuration that produced a
// secret. It depends only on cfg, never on the secret itself.
func Evaluate(cfg models.GenerationConfig) models.StrengthAssessment {
	return Assess(Entropy(cfg))
}

// Assess maps entropy bits to a full assessment.
func Assess(bits int) models.StrengthAssessment {
	return models.StrengthAssessment{
		EntropyBits:        bits,
		Tier:               TierFor(bits),
		EstimatedCrackTime: CrackTime(bits),
	}
}

// Entropy returns the entropy bits of cfg.
//
// Standard, bulk and pattern modes use floor(length * log2(|charset|)), where
// the pattern length is its rune count and the charset is built from cfg.
// Passphrase mode uses floor(wordCount * log2(len(WordList))) and ignores the
// separator, capitalization and the appended digit and symbol, so it
// understates the real entropy of a passphrase with a suffix.
func Entropy(cfg models.GenerationConfig) int {
	switch cfg.Mode {
	case models.ModePassphrase:
		return bits(cfg.WordCount, len(generator.WordList))
	case models.ModePattern:
		return bits(utf8.RuneCountInString(cfg.Pattern), generator.BuildCharset(cfg).Len())
	default:
		return bits(cfg.Length, generator.BuildCharset(cfg).Len())
	}
}

// TierFor maps entropy bits to a tier.
func TierFor(bits int) models.Tier {
	switch {
	case bits < MediumThreshold:
		return models.TierWeak
	case bits < StrongThreshold:
		return models.TierMedium
	case bits < VeryStrongThreshold:
		return models.TierStrong
	default:
		return models.TierVeryStrong
	}
}

func bits(length, poolSize int) int {
	if length <= 0 || poolSize <= 0 {
		return 0
	}
	return int(math.Floor(float64(length) * math.Log2(float64(poolSize))))
}
