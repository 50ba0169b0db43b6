package generator

import (
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/models"
)

// Generate runs the generator selected by cfg.Mode.
//
// Single-secret modes return a slice with one element, or an empty slice when
// the configuration cannot produce a secret. Unknown modes return nil.
func Generate(cfg models.GenerationConfig, src crypto.SecureRandomSource) []string {
	var secret string

	switch cfg.Mode {
	case models.ModeBulk:
		return Bulk(cfg, src)
	case models.ModeStandard:
		secret = Standard(cfg, src)
	case models.ModePassphrase:
		secret = Passphrase(cfg, src)
	case models.ModePattern:
		secret = Pattern(cfg, src)
	default:
		return nil
	}

	if secret == "" {
		return nil
	}
	return []string{secret}
}
