package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
	colorBar       = lipgloss.Color("#374151")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Echo of the line the user entered
	EchoStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(colorBar).
			Foreground(colorFg).
			Padding(0, 1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

// RenderTitle renders the header title
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}
