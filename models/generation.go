// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mode selects the generation algorithm applied to a [GenerationConfig].
type Mode string

const (
	// ModeStandard draws Length characters from the built charset.
	ModeStandard Mode = "standard"
	// ModePassphrase joins WordCount words from the embedded word list.
	ModePassphrase Mode = "passphrase"
	// ModePattern expands a L/U/N/S template.
	ModePattern Mode = "pattern"
	// ModeBulk produces BulkCount independent standard secrets.
	ModeBulk Mode = "bulk"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeStandard, ModePassphrase, ModePattern, ModeBulk}

// Category is a character class that can be enabled for charset based modes.
type Category string

const (
	CategoryUpper   Category = "upper"
	CategoryLower   Category = "lower"
	CategoryDigits  Category = "digits"
	CategorySymbols Category = "symbols"
)

// Categories lists all categories in the order the charset is assembled.
var Categories = []Category{CategoryUpper, CategoryLower, CategoryDigits, CategorySymbols}

// GenerationConfig is the complete set of user-facing generation options.
// It is passed by value into the generators; nothing keeps it between calls.
//
// Fields that do not apply to the selected Mode are ignored.
type GenerationConfig struct {
	Mode Mode `json:"mode" yaml:"mode"`

	// Length of each secret (standard, bulk).
	Length int `json:"length,omitempty" yaml:"length,omitempty"`

	Categories       []Category `json:"categories,omitempty" yaml:"categories,omitempty"`
	CustomChars      string     `json:"custom_chars,omitempty" yaml:"custom_chars,omitempty"`
	ExcludeSimilar   bool       `json:"exclude_similar,omitempty" yaml:"exclude_similar,omitempty"`
	ExcludeAmbiguous bool       `json:"exclude_ambiguous,omitempty" yaml:"exclude_ambiguous,omitempty"`
	AvoidRepeating   bool       `json:"avoid_repeating,omitempty" yaml:"avoid_repeating,omitempty"`

	// Passphrase options.
	WordCount             int    `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	Separator             string `json:"separator,omitempty" yaml:"separator,omitempty"`
	CapitalizeWords       bool   `json:"capitalize_words,omitempty" yaml:"capitalize_words,omitempty"`
	AppendNumberAndSymbol bool   `json:"append_number_and_symbol,omitempty" yaml:"append_number_and_symbol,omitempty"`

	// Pattern is a template over L, U, N, S; other characters are literals.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	BulkCount int `json:"bulk_count,omitempty" yaml:"bulk_count,omitempty"`
}

// HasCategory reports whether c is enabled in the config.
func (c GenerationConfig) HasCategory(category Category) bool {
	for _, enabled := range c.Categories {
		if enabled == category {
			return true
		}
	}
	return false
}

// WithCategory returns a copy of c with category switched on or off.
func (c GenerationConfig) WithCategory(category Category, on bool) GenerationConfig {
	categories := make([]Category, 0, len(Categories))
	for _, known := range Categories {
		enabled := c.HasCategory(known)
		if known == category {
			enabled = on
		}
		if enabled {
			categories = append(categories, known)
		}
	}
	c.Categories = categories
	return c
}

// DefaultGenerationConfig returns the options a fresh generator screen starts with.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Mode:       ModeStandard,
		Length:     16,
		Categories: []Category{CategoryUpper, CategoryLower, CategoryDigits, CategorySymbols},
		WordCount:  5,
		Separator:  "-",
		Pattern:    "ULLLNNSS",
		BulkCount:  10,
	}
}

// GenerationResult is what one generation call returns: the secrets and the
// assessment of the configuration that produced them.
type GenerationResult struct {
	Secrets    []string           `json:"secrets"`
	Assessment StrengthAssessment `json:"assessment"`
}
