// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"strings"

	"github.com/MKhiriev/go-pass-gen/models"
)

// Canonical category alphabets.
const (
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Exclusion sets.
const (
	// Similar holds characters that are easy to confuse with one another.
	Similar = "O0lI1|"
	// Ambiguous holds characters that often break when pasted into shells or configs.
	Ambiguous = "{}[]()/'\"\\`"
)

// Charset is the ordered set of unique characters a secret is drawn from.
type Charset []rune

// Len returns the number of distinct characters.
func (c Charset) Len() int {
	return len(c)
}

// String returns the characters in assembly order.
func (c Charset) String() string {
	return string(c)
}

// Contains reports whether r is part of the charset.
func (c Charset) Contains(r rune) bool {
	for _, ch := range c {
		if ch == r {
			return true
		}
	}
	return false
}

// CategoryAlphabet returns the canonical characters of category.
func CategoryAlphabet(category models.Category) string {
	switch category {
	case models.CategoryUpper:
		return Upper
	case models.CategoryLower:
		return Lower
	case models.CategoryDigits:
		return Digits
	case models.CategorySymbols:
		return Symbols
	default:
		return ""
	}
}

// BuildCharset assembles the effective alphabet of cfg.
//
// Enabled categories are concatenated in the fixed order upper, lower,
// digits, symbols, each at most once, followed by the custom characters.
// Characters already present are skipped so every character occurs once.
// The similar and ambiguous exclusions are applied afterwards, so custom
// characters are filtered as well. An empty result is not an error.
func BuildCharset(cfg models.GenerationConfig) Charset {
	var b strings.Builder
	for _, category := range models.Categories {
		if cfg.HasCategory(category) {
			b.WriteString(CategoryAlphabet(category))
		}
	}
	b.WriteString(cfg.CustomChars)

	var excluded string
	if cfg.ExcludeSimilar {
		excluded += Similar
	}
	if cfg.ExcludeAmbiguous {
		excluded += Ambiguous
	}

	seen := make(map[rune]struct{})
	charset := make(Charset, 0, b.Len())
	for _, r := range b.String() {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if strings.ContainsRune(excluded, r) {
			continue
		}
		charset = append(charset, r)
	}

	return charset
}
