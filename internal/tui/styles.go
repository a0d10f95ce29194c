// Package tui implements the interactive Woyofal session: an estimate
// tab, an appliance projection tab, and tariff settings, driven by a
// Bubble Tea event loop over the engine's session cache.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorAccent  = lipgloss.Color("39")  // blue
	ColorOK      = lipgloss.Color("42")  // green
	ColorWarning = lipgloss.Color("214") // orange
	ColorMuted   = lipgloss.Color("241") // grey
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	TotalStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorOK)
	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	ToastStyle  = lipgloss.NewStyle().Foreground(ColorOK)
	HelpStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	TabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(ColorMuted)
	ActiveTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).
			Foreground(ColorAccent).Underline(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorMuted)
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)
