package http

import (
	"time"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/service"
)

// maxBodySize bounds every JSON request body.
const maxBodySize = 16 << 20

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	breachLimiter  *visitorLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		breachLimiter:  newVisitorLimiter(cfg.BreachRateLimit, cfg.BreachRateBurst),
		logger:         logger,
	}
}
