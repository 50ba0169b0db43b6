package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/store"
	"github.com/MKhiriev/go-pass-gen/internal/tui"
	"github.com/MKhiriev/go-pass-gen/models"
)

// App owns the terminal client lifecycle: the local preset store, the
// services built on it and the TUI.
type App struct {
	storages *store.Storages
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp opens the preset store described by cfg.Storage and wires the
// services and the TUI on top of it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	breachAdapter, err := adapter.NewHTTPBreachAdapter(cfg.Breach, logger)
	if err != nil {
		return nil, fmt.Errorf("create breach adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services, err := service.NewServices(storages, breachAdapter, cfg.App, cfg.Generator, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	appVersion := services.AppInfoService.GetAppVersion(ctx)

	return &App{
		storages: storages,
		ui:       tui.New(services, cfg.Generator, buildInfo, appVersion, logger),
		logger:   logger,
	}, nil
}

// Run shows the TUI until the user leaves it. Quitting with ctrl+c is not
// an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("error closing local storage")
		}
	}()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "*App.Run").Msg("user quit the client")
		return nil
	}
	return err
}
