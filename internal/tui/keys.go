package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	esc   key.Binding
	quit  key.Binding

	cycleMode      key.Binding
	increase       key.Binding
	decrease       key.Binding
	toggleUpper    key.Binding
	toggleLower    key.Binding
	toggleDigits   key.Binding
	toggleSymbols  key.Binding
	excludeSimilar key.Binding
	excludeAmbig   key.Binding
	avoidRepeating key.Binding
	capitalize     key.Binding
	appendSuffix   key.Binding
	editPattern    key.Binding
	regenerate     key.Binding
	copy           key.Binding
	breach         key.Binding
	savePreset     key.Binding

	delete key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "k")),
	down:  key.NewBinding(key.WithKeys("down", "j")),
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	quit:  key.NewBinding(key.WithKeys("q")),

	cycleMode:      key.NewBinding(key.WithKeys("tab")),
	increase:       key.NewBinding(key.WithKeys("+", "=")),
	decrease:       key.NewBinding(key.WithKeys("-", "_")),
	toggleUpper:    key.NewBinding(key.WithKeys("1")),
	toggleLower:    key.NewBinding(key.WithKeys("2")),
	toggleDigits:   key.NewBinding(key.WithKeys("3")),
	toggleSymbols:  key.NewBinding(key.WithKeys("4")),
	excludeSimilar: key.NewBinding(key.WithKeys("s")),
	excludeAmbig:   key.NewBinding(key.WithKeys("a")),
	avoidRepeating: key.NewBinding(key.WithKeys("r")),
	capitalize:     key.NewBinding(key.WithKeys("w")),
	appendSuffix:   key.NewBinding(key.WithKeys("n")),
	editPattern:    key.NewBinding(key.WithKeys("p")),
	regenerate:     key.NewBinding(key.WithKeys("enter", "g")),
	copy:           key.NewBinding(key.WithKeys("c")),
	breach:         key.NewBinding(key.WithKeys("b")),
	savePreset:     key.NewBinding(key.WithKeys("ctrl+s")),

	delete: key.NewBinding(key.WithKeys("d")),
}
