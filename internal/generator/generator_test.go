package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-gen/internal/crypto/cryptotest"
	"github.com/MKhiriev/go-pass-gen/models"
)

func TestGenerate_Dispatch(t *testing.T) {
	base := models.DefaultGenerationConfig()

	tests := []struct {
		name      string
		mode      models.Mode
		wantCount int
	}{
		{name: "standard", mode: models.ModeStandard, wantCount: 1},
		{name: "passphrase", mode: models.ModePassphrase, wantCount: 1},
		{name: "pattern", mode: models.ModePattern, wantCount: 1},
		{name: "bulk", mode: models.ModeBulk, wantCount: base.BulkCount},
		{name: "unknown", mode: models.Mode("diceware"), wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Mode = tt.mode
			assert.Len(t, Generate(cfg, cryptotest.NewSeededSource(5)), tt.wantCount)
		})
	}
}

func TestGenerate_SameSeedSameOutput(t *testing.T) {
	cfg := models.DefaultGenerationConfig()

	a := Generate(cfg, cryptotest.NewSeededSource(42))
	b := Generate(cfg, cryptotest.NewSeededSource(42))

	assert.Equal(t, a, b)
}

func TestGenerate_DegenerateIsEmpty(t *testing.T) {
	src := cryptotest.NewSeededSource(1)

	assert.Empty(t, Generate(models.GenerationConfig{Mode: models.ModeStandard, Length: 8}, src))
	assert.Empty(t, Generate(models.GenerationConfig{Mode: models.ModePassphrase}, src))
	assert.Empty(t, Generate(models.GenerationConfig{Mode: models.ModePattern}, src))
	assert.Empty(t, Generate(models.GenerationConfig{Mode: models.ModeBulk, Length: 8, BulkCount: 3}, src))
}
