package generator

import (
	"strings"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/models"
)

// Pattern expands cfg.Pattern. The template letters are case-insensitive:
//
//	L  lowercase letter
//	U  uppercase letter
//	N  digit
//	S  symbol
//
// Any other character is copied to the output unchanged. Category and
// exclusion settings of cfg are ignored.
func Pattern(cfg models.GenerationConfig, src crypto.SecureRandomSource) string {
	if cfg.Pattern == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(cfg.Pattern))

	for _, r := range cfg.Pattern {
		alphabet := patternAlphabet(r)
		if alphabet == "" {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(alphabet[src.Intn(len(alphabet))])
	}

	return b.String()
}

func patternAlphabet(r rune) string {
	switch r {
	case 'L', 'l':
		return Lower
	case 'U', 'u':
		return Upper
	case 'N', 'n':
		return Digits
	case 'S', 's':
		return Symbols
	default:
		return ""
	}
}
