// ============================================================================
// chbrowse - OCR Coding Challenge Browser
// ============================================================================
//
// Package:     console
// Description: Output formatting for the challenge browser
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/msto63/chbrowse/internal/history"
	"github.com/msto63/chbrowse/internal/registry"

	cbstringx "github.com/msto63/chbrowse/foundation/utils/stringx"
)

// DefaultPrompt is shown before each input line
const DefaultPrompt = "> "

// Options configures a Printer
type Options struct {
	Output io.Writer
	Prompt string
	Color  bool
}

// HelpEntry is one line of the help screen: a set of equivalent commands
// and what they do
type HelpEntry struct {
	Names []string
	Text  string
}

// Printer renders browser output. Render methods return strings so the same
// formatting serves the line shell and the TUI; Print writes to the output.
type Printer struct {
	out    io.Writer
	prompt string
	styles Styles
}

// New creates a Printer. Color is forced off when opts.Color is false and
// otherwise follows what the output supports.
func New(opts Options) *Printer {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}

	renderer := lipgloss.NewRenderer(opts.Output)
	if !opts.Color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		out:    opts.Output,
		prompt: opts.Prompt,
		styles: NewStyles(renderer),
	}
}

// Writer returns the output writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Styles returns the style set in use
func (p *Printer) Styles() Styles {
	return p.styles
}

// Print writes s followed by a newline. Empty strings print an empty line.
func (p *Printer) Print(s string) {
	fmt.Fprintln(p.out, s)
}

// PrintPrompt writes the prompt without a newline
func (p *Printer) PrintPrompt() {
	fmt.Fprint(p.out, p.Prompt())
}

// Prompt returns the rendered prompt
func (p *Printer) Prompt() string {
	return p.styles.Prompt.Render(p.prompt)
}

// Banner returns the greeting shown when the browser starts
func (p *Printer) Banner() string {
	return p.styles.Title.Render("Response Browser for OCR 2016 Coding Challenges")
}

// Help renders the list of browser commands
func (p *Printer) Help(entries []HelpEntry) string {
	lines := []string{p.styles.Muted.Render("Available commands:")}

	for _, e := range entries {
		names := make([]string, len(e.Names))
		for i, n := range e.Names {
			names[i] = p.styles.Flag.Render(n)
		}
		lines = append(lines, "    "+
			p.styles.Separator.Render("<")+
			strings.Join(names, p.styles.Separator.Render("|"))+
			p.styles.Separator.Render(">")+
			p.styles.Muted.Render(": "+e.Text))
	}

	lines = append(lines, "    "+p.styles.Muted.Render("<challenge> [args...]: Run a challenge. Add -d for its description or -h for its usage."))
	return strings.Join(lines, "\n")
}

// Challenges renders the challenge list as "index : name  summary"
func (p *Printer) Challenges(cmds []*registry.Command) string {
	if len(cmds) == 0 {
		return p.Notice("No challenges registered.")
	}

	width := 0
	for _, c := range cmds {
		if l := len(c.Name); l > width {
			width = l
		}
	}

	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		index := "-"
		if c.Index > 0 {
			index = strconv.Itoa(c.Index)
		}
		line := p.styles.Index.Render(cbstringx.PadRight(index, 2, ' ')) +
			p.styles.Muted.Render(" : ") +
			p.styles.Name.Render(cbstringx.PadRight(c.Name, width, ' '))
		if cbstringx.IsNotBlank(c.Summary) {
			line += "  " + p.styles.Muted.Render(c.Summary)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Description renders a challenge's booklet description
func (p *Printer) Description(cmd *registry.Command) string {
	text := cbstringx.FirstNonBlank(cmd.Description, cmd.Summary, "No description available for "+cmd.Name+".")
	return p.renderLines(p.styles.Separator, text)
}

// Usage renders a challenge's usage text, including its aliases
func (p *Printer) Usage(cmd *registry.Command) string {
	var parts []string
	if cbstringx.IsNotBlank(cmd.Summary) {
		parts = append(parts, p.styles.Name.Render(cmd.Summary), "")
	}
	parts = append(parts, p.styles.Heading.Render("Usage:"))
	parts = append(parts, p.renderLines(p.styles.Separator, cbstringx.FirstNonBlank(cmd.Usage, cmd.Name+" [args...]")))
	if len(cmd.Aliases) > 0 {
		parts = append(parts, "", p.styles.Muted.Render("Aliases: "+strings.Join(cmd.Aliases, ", ")))
	}
	return strings.Join(parts, "\n")
}

// Output renders handler output
func (p *Printer) Output(s string) string {
	return p.renderLines(p.styles.Output, s)
}

// Error renders an error as a single line
func (p *Printer) Error(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	return p.styles.Error.Render("error: " + msg)
}

// Notice renders an informational message
func (p *Printer) Notice(s string) string {
	return p.styles.Notice.Render(s)
}

// History renders recorded lines, newest first
func (p *Printer) History(entries []*history.Entry) string {
	if len(entries) == 0 {
		return p.Notice("History is empty.")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		status := p.styles.Output.Render(cbstringx.PadRight(string(e.Status), 5, ' '))
		if e.Status == history.StatusError {
			status = p.styles.Error.Render(cbstringx.PadRight(string(e.Status), 5, ' '))
		}
		line := p.styles.Muted.Render(e.CreatedAt.Format("2006-01-02 15:04:05")) + " " + status + " " + e.Line
		if e.Error != "" {
			line += p.styles.Muted.Render("  (" + cbstringx.Truncate(e.Error, 60, "...") + ")")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderLines styles each line separately so multi-line text is not padded
// to a block
func (p *Printer) renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}
