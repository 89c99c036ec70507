package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains the keyboard shortcuts of the bindings browser
type KeyMap struct {
	Delete key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
	Record key.Binding
	Toggle key.Binding
	Up     key.Binding
}

// NewKeyMap creates a KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete binding"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Record: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-record shortcut"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "enable/disable"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
	}
}

// ShortHelp returns the key bindings for the bottom help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Record, k.Delete, k.Quit}
}

// FullHelp returns all key bindings grouped in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Record, k.Delete},
		{k.Help, k.Quit},
	}
}
