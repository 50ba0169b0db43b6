package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-gen/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	secretStyle = lipgloss.NewStyle().Bold(true)

	tierStyles = map[models.Tier]lipgloss.Style{
		models.TierWeak:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		models.TierMedium:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		models.TierStrong:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		models.TierVeryStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	}
)

func renderTier(tier models.Tier) string {
	style, ok := tierStyles[tier]
	if !ok {
		return string(tier)
	}
	return style.Render(string(tier))
}
