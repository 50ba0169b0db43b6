package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/service"
)

// newTestServices returns Services backed by default function-field mocks.
func newTestServices() *service.Services {
	return &service.Services{
		GeneratorService: &mockGeneratorService{},
		StrengthService:  &mockStrengthService{},
		BreachService:    &mockBreachService{},
		ExportService:    &mockExportService{},
		PresetService:    &mockPresetService{},
		AppInfoService:   &mockAppInfoService{version: "test-version"},
		Validator:        &mockValidator{},
	}
}

func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = newTestServices()
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{RequestTimeout: 5 * time.Second, BreachRateLimit: 2, BreachRateBurst: 3}

	h := NewHandler(svcs, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	require.NotNil(t, h.breachLimiter)
	assert.Equal(t, 3, h.breachLimiter.burst)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := newTestHandler(nil)
	h2 := newTestHandler(nil)

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.breachLimiter, h2.breachLimiter)
}
