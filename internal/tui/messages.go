package tui

import (
	"github.com/MKhiriev/go-pass-gen/models"
)

// NavigateTo asks the RootModel to switch pages. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// breachCheckedMsg carries the result of an asynchronous breach lookup for
// secret. It is dropped when the generator shows a different secret by then.
type breachCheckedMsg struct {
	secret string
	result models.BreachResult
}

type presetsLoadedMsg struct {
	presets []models.Preset
	err     error
}

type presetSavedMsg struct {
	preset models.Preset
	err    error
}

type presetDeletedMsg struct {
	name string
	err  error
}

// applyPresetMsg loads a stored config into the generator.
type applyPresetMsg struct {
	preset models.Preset
}

type clearStatusMsg struct{}
