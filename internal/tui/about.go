// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-gen/models"
)

// AboutModel shows build metadata.
type AboutModel struct {
	info       models.AppBuildInfo
	appVersion string
}

func NewAboutModel(info models.AppBuildInfo, appVersion string) *AboutModel {
	return &AboutModel{info: info, appVersion: appVersion}
}

func (m *AboutModel) Init() tea.Cmd {
	return nil
}

func (m *AboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return m, navigate(pageMenu, nil)
	}
	return m, nil
}

func (m *AboutModel) View() string {
	var b strings.Builder

	b.WriteString("Application: go-pass-gen\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(m.appVersion))
	b.WriteString("\nBuild version: ")
	b.WriteString(valueOrNA(m.info.BuildVersion()))
	b.WriteString("\nBuild date: ")
	b.WriteString(valueOrNA(m.info.BuildDate()))
	b.WriteString("\nCommit: ")
	b.WriteString(valueOrNA(m.info.BuildCommit()))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
