package strength

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-gen/internal/generator"
	"github.com/MKhiriev/go-pass-gen/models"
)

// SecretEntropy estimates the entropy of a secret typed by a user, for which
// no generation config is known.
//
// The pool is the sum of the sizes of the canonical categories the secret
// uses, plus one for every distinct character outside them. The result is
// floor(length * log2(pool)).
func SecretEntropy(secret string) int {
	if secret == "" {
		return 0
	}

	var used [4]bool
	others := make(map[rune]struct{})

	for _, r := range secret {
		matched := false
		for i, category := range models.Categories {
			if strings.ContainsRune(generator.CategoryAlphabet(category), r) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			others[r] = struct{}{}
		}
	}

	pool := len(others)
	for i, category := range models.Categories {
		if used[i] {
			pool += len(generator.CategoryAlphabet(category))
		}
	}

	return bits(utf8.RuneCountInString(secret), pool)
}

// AssessSecret is [Assess] applied to [SecretEntropy].
func AssessSecret(secret string) models.StrengthAssessment {
	return Assess(SecretEntropy(secret))
}
