package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/models"
)

const presetNameWidth = 24

// PresetsModel lists stored presets. Enter opens the selected one in the
// generator, d deletes it.
type PresetsModel struct {
	ctx     context.Context
	presets service.PresetService

	items   []models.Preset
	idx     int
	loading bool
	err     error
}

func NewPresetsModel(ctx context.Context, presets service.PresetService) *PresetsModel {
	return &PresetsModel{ctx: ctx, presets: presets}
}

func (m *PresetsModel) Init() tea.Cmd {
	m.loading = true
	return m.load()
}

func (m *PresetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case presetsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.items = msg.presets
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case presetDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if preset, ok := m.selected(); ok {
				return m, navigate(pageGenerator, applyPresetMsg{preset: preset})
			}
		case key.Matches(msg, keys.delete):
			if preset, ok := m.selected(); ok {
				return m, m.remove(preset.Name)
			}
		}
	}

	return m, nil
}

func (m *PresetsModel) selected() (models.Preset, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Preset{}, false
	}
	return m.items[m.idx], true
}

func (m *PresetsModel) load() tea.Cmd {
	ctx, presets := m.ctx, m.presets
	return func() tea.Msg {
		list, err := presets.ListPresets(ctx)
		return presetsLoadedMsg{presets: list, err: err}
	}
}

func (m *PresetsModel) remove(name string) tea.Cmd {
	ctx, presets := m.ctx, m.presets
	return func() tea.Msg {
		return presetDeletedMsg{name: name, err: presets.DeletePreset(ctx, name)}
	}
}

func (m *PresetsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString(helpStyle.Render("No presets yet. Press ctrl+s on the generator screen to save one."))
	default:
		nameWidth := lipgloss.Width("Name")
		for _, p := range m.items {
			nameWidth = max(nameWidth, lipgloss.Width(fitText(p.Name, presetNameWidth)))
		}

		b.WriteString(fmt.Sprintf("  %-*s │ %-10s │ %s\n", nameWidth, "Name", "Mode", "Updated"))
		b.WriteString(strings.Repeat("─", nameWidth+2) + "─┼─" + strings.Repeat("─", 10) + "─┼─" + strings.Repeat("─", 14) + "\n")
		for i, p := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-*s │ %-10s │ %s\n",
				cursor, nameWidth, fitText(p.Name, presetNameWidth), p.Config.Mode, humanize.Time(p.UpdatedAt)))
		}
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(humanizeError(m.err)))
	}

	return renderPage("PRESETS", strings.TrimRight(b.String(), "\n"), "enter: open │ d: delete │ ↑/↓: navigate │ esc: back")
}
