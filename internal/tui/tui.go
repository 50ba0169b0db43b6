// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/models"
)

// TUI is the interactive terminal front end over [service.Services].
type TUI struct {
	services   *service.Services
	limits     config.Generator
	buildInfo  models.AppBuildInfo
	appVersion string
	logger     *logger.Logger
}

func New(services *service.Services, limits config.Generator, buildInfo models.AppBuildInfo, appVersion string, logger *logger.Logger) *TUI {
	return &TUI{
		services:   services,
		limits:     limits,
		buildInfo:  buildInfo,
		appVersion: appVersion,
		logger:     logger,
	}
}

// NewRoot wires every page into a RootModel that starts on the menu.
func (t *TUI) NewRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageGenerator: NewGeneratorModel(ctx, t.services, t.limits),
		pagePresets:   NewPresetsModel(ctx, t.services.PresetService),
		pageAbout:     NewAboutModel(t.buildInfo, t.appVersion),
	}
	return NewRootModel(pages, pageMenu)
}

// Run blocks until the user leaves the program. ErrUserQuit is returned when
// the user pressed ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(t.NewRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal UI stopped with error")
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
