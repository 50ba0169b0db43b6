// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/models"
)

// PassphraseSymbols is the set the optional trailing symbol is drawn from.
const PassphraseSymbols = "!@#$%&*?"

// Passphrase joins cfg.WordCount words drawn with replacement from [WordList].
//
// CapitalizeWords upper-cases the first letter of every word. When
// AppendNumberAndSymbol is set one digit and then one symbol from
// [PassphraseSymbols] are appended directly after the last word.
func Passphrase(cfg models.GenerationConfig, src crypto.SecureRandomSource) string {
	if cfg.WordCount <= 0 {
		return ""
	}

	var caser cases.Caser
	if cfg.CapitalizeWords {
		caser = cases.Title(language.English)
	}

	words := make([]string, 0, cfg.WordCount)
	for range cfg.WordCount {
		word := WordList[src.Intn(len(WordList))]
		if cfg.CapitalizeWords {
			word = caser.String(word)
		}
		words = append(words, word)
	}

	phrase := strings.Join(words, cfg.Separator)

	if cfg.AppendNumberAndSymbol {
		phrase += string(Digits[src.Intn(len(Digits))])
		phrase += string(PassphraseSymbols[src.Intn(len(PassphraseSymbols))])
	}

	return phrase
}
