package ui

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

const (
	ColorPrimary   Color = "99"  // Purple - app name, titles
	ColorError     Color = "196" // Bright red
	ColorValid     Color = "2"   // Green
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorHighlight Color = "255" // White - emphasis
	ColorDisabled  Color = "8"   // Gray - disabled bindings
	ColorShortcut  Color = "86"  // Cyan - shortcut glyphs
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorDisabled)

	ShortcutStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorShortcut)

	CommandStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	ValidStyle = lipgloss.NewStyle().
			Foreground(ColorValid)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)
)
