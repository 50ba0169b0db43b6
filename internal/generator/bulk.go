package generator

import (
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/models"
)

// Bulk returns cfg.BulkCount independent secrets of cfg.Length characters.
// Every character is drawn independently; AvoidRepeating does not apply.
func Bulk(cfg models.GenerationConfig, src crypto.SecureRandomSource) []string {
	charset := BuildCharset(cfg)
	if cfg.BulkCount <= 0 || cfg.Length <= 0 || charset.Len() == 0 {
		return nil
	}

	secrets := make([]string, 0, cfg.BulkCount)
	for range cfg.BulkCount {
		secrets = append(secrets, standard(charset, cfg.Length, false, src))
	}

	return secrets
}
