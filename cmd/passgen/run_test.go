package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/crypto/cryptotest"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
	"github.com/MKhiriev/go-pass-gen/models"
)

type fakeBreachService struct {
	mu     sync.Mutex
	counts map[string]int
	calls  int
}

func (f *fakeBreachService) Check(_ context.Context, secret string) models.BreachResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return models.BreachResult{OccurrenceCount: f.counts[secret], Checked: true}
}

func newTestPassgen(breach service.BreachService) (*passgen, *bytes.Buffer) {
	validator := validators.NewGenerationValidator(testLimits)
	generator := service.NewGeneratorService(cryptotest.NewSeededSource(7), service.NewStrengthService(), logger.Nop())
	out := &bytes.Buffer{}

	return &passgen{
		generator: service.NewGeneratorValidationService(validator).Wrap(generator),
		breach:    breach,
		export:    service.NewExportService(crypto.NewSealer(), validator, logger.Nop()),
		stdout:    out,
		logger:    logger.Nop(),
	}, out
}

func TestPassgen_Run_PrintsSecretAndAssessment(t *testing.T) {
	p, out := newTestPassgen(&fakeBreachService{})
	opts := options{cfg: models.DefaultGenerationConfig()}

	require.NoError(t, p.run(context.Background(), opts))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Len(t, []rune(lines[0]), 16)
	assert.Contains(t, lines[2], "bits of entropy")
}

func TestPassgen_Run_Quiet(t *testing.T) {
	p, out := newTestPassgen(&fakeBreachService{})
	cfg := models.DefaultGenerationConfig()
	cfg.Mode = models.ModeBulk
	cfg.BulkCount = 5

	require.NoError(t, p.run(context.Background(), options{cfg: cfg, quiet: true}))

	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 5)
}

func TestPassgen_Run_BreachCheckEverySecret(t *testing.T) {
	breach := &fakeBreachService{counts: map[string]int{}}
	p, out := newTestPassgen(breach)
	cfg := models.DefaultGenerationConfig()
	cfg.Mode = models.ModeBulk
	cfg.BulkCount = 6

	require.NoError(t, p.run(context.Background(), options{cfg: cfg, breach: true, workers: 3, quiet: true}))

	assert.Equal(t, 6, breach.calls)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		assert.True(t, strings.HasSuffix(line, "(not found in breaches)"), line)
	}
}

func TestPassgen_Run_ExportToStdout(t *testing.T) {
	p, out := newTestPassgen(&fakeBreachService{})
	cfg := models.DefaultGenerationConfig()
	cfg.Mode = models.ModeBulk
	cfg.BulkCount = 2

	require.NoError(t, p.run(context.Background(), options{cfg: cfg, format: models.ExportCSV}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,password", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
}

func TestPassgen_Run_ExportSealedFile(t *testing.T) {
	p, out := newTestPassgen(&fakeBreachService{})
	path := filepath.Join(t.TempDir(), "secrets.json.sealed")
	cfg := models.DefaultGenerationConfig()
	cfg.Mode = models.ModeBulk
	cfg.BulkCount = 4

	require.NoError(t, p.run(context.Background(), options{cfg: cfg, format: models.ExportJSON, out: path, passphrase: "pw"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	secrets, err := p.export.Import(context.Background(), models.ExportJSON, data, "pw")
	require.NoError(t, err)
	assert.Len(t, secrets, 4)
	assert.Contains(t, out.String(), "wrote 4 secrets")
}

func TestPassgen_Run_Errors(t *testing.T) {
	p, _ := newTestPassgen(&fakeBreachService{})

	cfg := models.DefaultGenerationConfig()
	cfg.Length = testLimits.MaxLength + 1
	err := p.run(context.Background(), options{cfg: cfg})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	cfg = models.DefaultGenerationConfig()
	cfg.Categories = nil
	err = p.run(context.Background(), options{cfg: cfg})
	assert.ErrorContains(t, err, "nothing to generate")

	cfg = models.DefaultGenerationConfig()
	err = p.run(context.Background(), options{cfg: cfg, format: "xml"})
	assert.ErrorIs(t, err, service.ErrUnknownExportFormat)
}

func TestBreachNote(t *testing.T) {
	assert.Equal(t, "(not checked)", breachNote(models.BreachResult{}))
	assert.Equal(t, "(not found in breaches)", breachNote(models.BreachResult{Checked: true}))
	assert.Equal(t, "(seen 1,234,567 times in breaches)", breachNote(models.BreachResult{Checked: true, OccurrenceCount: 1234567}))
}
