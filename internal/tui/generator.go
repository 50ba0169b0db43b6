package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/models"
)

const (
	statusTTL      = 2 * time.Second
	maxShownSecret = 10
)

// GeneratorModel is the main screen: it holds the current config, the
// secrets generated from it and the last breach lookup.
type GeneratorModel struct {
	ctx      context.Context
	services *service.Services
	limits   config.Generator

	cfg    models.GenerationConfig
	result models.GenerationResult

	breach   *models.BreachResult
	checking bool
	spinner  spinner.Model

	patternInput   textinput.Model
	editingPattern bool
	presetInput    textinput.Model
	savingPreset   bool

	status string
	err    error

	copyToClipboard func(string) error
}

func NewGeneratorModel(ctx context.Context, services *service.Services, limits config.Generator) *GeneratorModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	pattern := textinput.New()
	pattern.Placeholder = "L/U/N/S, other characters are literal"

	preset := textinput.New()
	preset.Placeholder = "preset name"
	preset.CharLimit = 64

	m := &GeneratorModel{
		ctx:             ctx,
		services:        services,
		limits:          limits,
		cfg:             models.DefaultGenerationConfig(),
		spinner:         s,
		patternInput:    pattern,
		presetInput:     preset,
		copyToClipboard: clipboard.WriteAll,
	}
	m.regenerate()
	return m
}

func (m *GeneratorModel) Init() tea.Cmd {
	return nil
}

// Config returns the options the screen currently generates with.
func (m *GeneratorModel) Config() models.GenerationConfig {
	return m.cfg
}

// Secrets returns the secrets on screen.
func (m *GeneratorModel) Secrets() []string {
	return m.result.Secrets
}

func (m *GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case applyPresetMsg:
		m.cfg = msg.preset.Config
		m.regenerate()
		return m, m.setStatus("Loaded preset " + msg.preset.Name)

	case breachCheckedMsg:
		if msg.secret != m.currentSecret() {
			return m, nil
		}
		m.checking = false
		result := msg.result
		m.breach = &result
		return m, nil

	case presetSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.setStatus("Saved preset " + msg.preset.Name)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.checking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.editingPattern {
			return m.updatePatternInput(msg)
		}
		if m.savingPreset {
			return m.updatePresetInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *GeneratorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	changed := true

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageMenu, nil)
	case key.Matches(msg, keys.cycleMode):
		m.cfg.Mode = nextMode(m.cfg.Mode)
	case key.Matches(msg, keys.increase):
		m.adjust(1)
	case key.Matches(msg, keys.decrease):
		m.adjust(-1)
	case key.Matches(msg, keys.toggleUpper):
		m.toggle(models.CategoryUpper)
	case key.Matches(msg, keys.toggleLower):
		m.toggle(models.CategoryLower)
	case key.Matches(msg, keys.toggleDigits):
		m.toggle(models.CategoryDigits)
	case key.Matches(msg, keys.toggleSymbols):
		m.toggle(models.CategorySymbols)
	case key.Matches(msg, keys.excludeSimilar):
		m.cfg.ExcludeSimilar = !m.cfg.ExcludeSimilar
	case key.Matches(msg, keys.excludeAmbig):
		m.cfg.ExcludeAmbiguous = !m.cfg.ExcludeAmbiguous
	case key.Matches(msg, keys.avoidRepeating):
		m.cfg.AvoidRepeating = !m.cfg.AvoidRepeating
	case key.Matches(msg, keys.capitalize):
		m.cfg.CapitalizeWords = !m.cfg.CapitalizeWords
	case key.Matches(msg, keys.appendSuffix):
		m.cfg.AppendNumberAndSymbol = !m.cfg.AppendNumberAndSymbol
	case key.Matches(msg, keys.regenerate):
	case key.Matches(msg, keys.editPattern):
		m.editingPattern = true
		m.patternInput.SetValue(m.cfg.Pattern)
		m.patternInput.CursorEnd()
		return m, m.patternInput.Focus()
	case key.Matches(msg, keys.savePreset):
		m.savingPreset = true
		m.presetInput.SetValue("")
		return m, m.presetInput.Focus()
	case key.Matches(msg, keys.copy):
		return m, m.copySecrets()
	case key.Matches(msg, keys.breach):
		return m, m.checkBreach()
	default:
		changed = false
	}

	if changed {
		m.regenerate()
	}
	return m, nil
}

func (m *GeneratorModel) updatePatternInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.cfg.Pattern = m.patternInput.Value()
		m.editingPattern = false
		m.patternInput.Blur()
		if m.cfg.Mode != models.ModePattern {
			m.cfg.Mode = models.ModePattern
		}
		m.regenerate()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.editingPattern = false
		m.patternInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.patternInput, cmd = m.patternInput.Update(msg)
	return m, cmd
}

func (m *GeneratorModel) updatePresetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		name := strings.TrimSpace(m.presetInput.Value())
		m.savingPreset = false
		m.presetInput.Blur()
		if name == "" {
			return m, nil
		}
		return m, m.savePreset(name)
	case key.Matches(msg, keys.esc):
		m.savingPreset = false
		m.presetInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.presetInput, cmd = m.presetInput.Update(msg)
	return m, cmd
}

// regenerate replaces the secrets on screen and forgets the previous breach
// result.
func (m *GeneratorModel) regenerate() {
	m.breach = nil
	m.checking = false
	m.err = nil

	result, err := m.services.GeneratorService.Generate(m.ctx, m.cfg)
	if err != nil {
		m.err = err
		m.result = models.GenerationResult{Assessment: m.services.StrengthService.Assess(m.ctx, m.cfg)}
		return
	}
	m.result = result
}

func (m *GeneratorModel) adjust(delta int) {
	switch m.cfg.Mode {
	case models.ModePassphrase:
		m.cfg.WordCount = clamp(m.cfg.WordCount+delta, 1, m.limits.MaxWordCount)
	case models.ModeBulk:
		m.cfg.BulkCount = clamp(m.cfg.BulkCount+delta, 1, m.limits.MaxBulkCount)
	case models.ModePattern:
	default:
		m.cfg.Length = clamp(m.cfg.Length+delta, 1, m.limits.MaxLength)
	}
}

func (m *GeneratorModel) toggle(category models.Category) {
	m.cfg = m.cfg.WithCategory(category, !m.cfg.HasCategory(category))
}

func (m *GeneratorModel) currentSecret() string {
	if len(m.result.Secrets) == 0 {
		return ""
	}
	return m.result.Secrets[0]
}

func (m *GeneratorModel) copySecrets() tea.Cmd {
	if len(m.result.Secrets) == 0 {
		return m.setStatus("Nothing to copy")
	}
	if err := m.copyToClipboard(strings.Join(m.result.Secrets, "\n")); err != nil {
		m.err = fmt.Errorf("copy failed: %w", err)
		return nil
	}
	return m.setStatus("Copied")
}

// checkBreach looks up the first secret on screen. The result arrives as a
// breachCheckedMsg.
func (m *GeneratorModel) checkBreach() tea.Cmd {
	secret := m.currentSecret()
	if secret == "" || m.checking {
		return nil
	}
	m.checking = true
	m.breach = nil

	ctx, breachSvc := m.ctx, m.services.BreachService
	lookup := func() tea.Msg {
		return breachCheckedMsg{secret: secret, result: breachSvc.Check(ctx, secret)}
	}
	return tea.Batch(lookup, m.spinner.Tick)
}

func (m *GeneratorModel) savePreset(name string) tea.Cmd {
	ctx, presets, cfg := m.ctx, m.services.PresetService, m.cfg
	return func() tea.Msg {
		preset, err := presets.SavePreset(ctx, name, cfg)
		return presetSavedMsg{preset: preset, err: err}
	}
}

func (m *GeneratorModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *GeneratorModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Mode: %s\n", m.cfg.Mode)
	switch m.cfg.Mode {
	case models.ModePassphrase:
		fmt.Fprintf(&b, "Words: %d  Separator: %q\n", m.cfg.WordCount, m.cfg.Separator)
		fmt.Fprintf(&b, "%s capitalize (w)  %s number+symbol (n)\n", checkbox(m.cfg.CapitalizeWords), checkbox(m.cfg.AppendNumberAndSymbol))
	case models.ModePattern:
		fmt.Fprintf(&b, "Pattern: %s\n", m.cfg.Pattern)
	default:
		if m.cfg.Mode == models.ModeBulk {
			fmt.Fprintf(&b, "Count: %d  ", m.cfg.BulkCount)
		}
		fmt.Fprintf(&b, "Length: %d\n", m.cfg.Length)
		for i, category := range models.Categories {
			fmt.Fprintf(&b, "%s %s (%d)  ", checkbox(m.cfg.HasCategory(category)), category, i+1)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s exclude similar (s)  %s exclude ambiguous (a)", checkbox(m.cfg.ExcludeSimilar), checkbox(m.cfg.ExcludeAmbiguous))
		if m.cfg.Mode == models.ModeStandard {
			fmt.Fprintf(&b, "  %s avoid repeating (r)", checkbox(m.cfg.AvoidRepeating))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.editingPattern:
		b.WriteString("Pattern: " + m.patternInput.View() + "\n")
	case m.savingPreset:
		b.WriteString("Save as: " + m.presetInput.View() + "\n")
	case len(m.result.Secrets) == 0:
		b.WriteString(helpStyle.Render("(nothing to generate with these settings)") + "\n")
	default:
		for i, secret := range m.result.Secrets {
			if i == maxShownSecret {
				fmt.Fprintf(&b, "... and %d more\n", len(m.result.Secrets)-maxShownSecret)
				break
			}
			b.WriteString(secretStyle.Render(secret) + "\n")
		}
	}
	b.WriteString("\n")

	a := m.result.Assessment
	fmt.Fprintf(&b, "Strength: %s, %d bits, crack time %s\n", renderTier(a.Tier), a.EntropyBits, a.EstimatedCrackTime)
	b.WriteString("Breach: " + m.breachLine() + "\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(humanizeError(m.err)) + "\n")
	}

	return renderPage("GENERATOR", strings.TrimRight(b.String(), "\n"),
		"tab: mode │ +/-: size │ 1-4: classes │ p: pattern │ g: new │ c: copy │ b: breach │ ctrl+s: save │ esc: back")
}

func (m *GeneratorModel) breachLine() string {
	switch {
	case m.checking:
		return m.spinner.View() + " checking..."
	case m.breach == nil:
		return "not checked"
	case m.breach.Breached():
		return errorStyle.Render(fmt.Sprintf("found in %d breaches", m.breach.OccurrenceCount))
	default:
		return "not found in known breaches"
	}
}

func nextMode(mode models.Mode) models.Mode {
	for i, known := range models.Modes {
		if known == mode {
			return models.Modes[(i+1)%len(models.Modes)]
		}
	}
	return models.Modes[0]
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
