package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Start, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/click", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyAction is what a key press means to the model.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyStart
	KeyQuit
)

// MapKey translates a key message to a key action.
func (k KeyMap) MapKey(msg tea.KeyMsg) KeyAction {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit
	case key.Matches(msg, k.Left):
		return KeyLeft
	case key.Matches(msg, k.Right):
		return KeyRight
	case key.Matches(msg, k.Fire):
		return KeyFire
	case key.Matches(msg, k.Start):
		return KeyStart
	}
	return KeyNone
}

// MapMouse translates a left-button press to a click in field coordinates.
// The field starts below the HUD rows.
func MapMouse(msg tea.MouseMsg) (core.Event, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Event{}, false
	}
	return core.Click(msg.X, msg.Y-invaders.HUDRows), true
}
