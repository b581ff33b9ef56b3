package console

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorInfo      = lipgloss.Color("#06B6D4")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles groups the styles a Printer renders with
type Styles struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Flag      lipgloss.Style
	Separator lipgloss.Style
	Index     lipgloss.Style
	Name      lipgloss.Style
	Output    lipgloss.Style
	Error     lipgloss.Style
	Notice    lipgloss.Style
	Prompt    lipgloss.Style
	Heading   lipgloss.Style
}

// NewStyles builds the style set on r so that the color profile follows the
// renderer's output
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:     r.NewStyle().Bold(true).Foreground(colorPrimary),
		Muted:     r.NewStyle().Foreground(colorMuted),
		Flag:      r.NewStyle().Foreground(colorInfo),
		Separator: r.NewStyle().Foreground(colorFg),
		Index:     r.NewStyle().Foreground(colorAccent),
		Name:      r.NewStyle().Foreground(colorFg).Bold(true),
		Output:    r.NewStyle().Foreground(colorSecondary),
		Error:     r.NewStyle().Foreground(colorError),
		Notice:    r.NewStyle().Foreground(colorInfo).Italic(true),
		Prompt:    r.NewStyle().Foreground(colorPrimary).Bold(true),
		Heading:   r.NewStyle().Foreground(colorMuted).Underline(true),
	}
}
