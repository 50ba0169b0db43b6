// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/models"
)

// Standard returns a secret of exactly cfg.Length characters drawn from the
// charset built for cfg.
//
// With cfg.AvoidRepeating a drawn character that is already in the result is
// drawn again, but only while the result is shorter than the charset. Past
// that point repeats are unavoidable and allowed.
func Standard(cfg models.GenerationConfig, src crypto.SecureRandomSource) string {
	return standard(BuildCharset(cfg), cfg.Length, cfg.AvoidRepeating, src)
}

func standard(charset Charset, length int, avoidRepeating bool, src crypto.SecureRandomSource) string {
	if length <= 0 || charset.Len() == 0 {
		return ""
	}

	result := make([]rune, 0, length)
	used := make(map[rune]struct{}, min(length, charset.Len()))

	for len(result) < length {
		r := charset[src.Intn(charset.Len())]

		if avoidRepeating && len(result) < charset.Len() {
			if _, seen := used[r]; seen {
				continue
			}
		}

		used[r] = struct{}{}
		result = append(result, r)
	}

	return string(result)
}
