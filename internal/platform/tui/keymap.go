package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hero-dash/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Jump  key.Binding
	Start key.Binding
	Sound key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Start, k.Sound, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Start, k.Sound, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "walk left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "walk right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", "k", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// direction returns the held action a key maps to, if any.
func (k KeyMap) direction(msg tea.KeyMsg) (core.Action, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft, true
	case key.Matches(msg, k.Right):
		return core.ActionRight, true
	}
	return core.ActionNone, false
}
