package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/chbrowse/internal/console"
	"github.com/msto63/chbrowse/internal/history"
	"github.com/msto63/chbrowse/internal/shell"

	cblog "github.com/msto63/chbrowse/foundation/core/log"
)

const (
	placeholderCommand = "Enter a command, e.g. factorial 5"
	placeholderConfirm = "Y/N"

	// header, input box and status bar
	chromeHeight = 7
)

// Options configures the TUI model
type Options struct {
	Recorder    history.Recorder
	ConfirmExit bool
	SessionID   string
	Logger      *cblog.Logger
}

// Model is the full-screen challenge browser
type Model struct {
	ctx        context.Context
	dispatcher *shell.Dispatcher
	printer    *console.Printer
	opts       Options
	logger     *cblog.Logger

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	running    bool
	confirming bool
	quitting   bool

	transcript []string
}

// dispatchedMsg carries the outcome of one dispatched line
type dispatchedMsg struct {
	line string
	res  shell.Result
	err  error
}

// New creates a TUI model around d. p renders results into the transcript.
func New(ctx context.Context, d *shell.Dispatcher, p *console.Printer, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = cblog.GetDefault()
	}
	if opts.SessionID == "" {
		opts.SessionID = history.NewSessionID()
	}

	ti := textinput.New()
	ti.Placeholder = placeholderCommand
	ti.Prompt = p.Prompt()
	ti.CharLimit = 1024
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	m := Model{
		ctx:        ctx,
		dispatcher: d,
		printer:    p,
		opts:       opts,
		logger: opts.Logger.
			WithField("component", "tui").
			WithSessionID(opts.SessionID),
		input:   ti,
		spinner: sp,
	}
	m.transcript = []string{p.Banner(), p.Help(d.HelpEntries())}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyCtrlL:
			m.transcript = nil
			m.updateContent()
			return m, nil

		case tea.KeyEnter:
			if m.running {
				return m, nil
			}
			line := m.input.Value()
			m.input.Reset()

			if m.confirming {
				return m.answerConfirm(line)
			}

			m.append(EchoStyle.Render(m.printer.Prompt() + line))
			m.running = true
			return m, tea.Batch(m.dispatch(line), m.spinner.Tick)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-chromeHeight))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-chromeHeight)
		}
		m.input.Width = max(10, msg.Width-8)
		m.updateContent()

	case dispatchedMsg:
		m.running = false
		return m.handleResult(msg)

	case spinner.TickMsg:
		if m.running {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) dispatch(line string) tea.Cmd {
	ctx := m.ctx
	d := m.dispatcher
	return func() tea.Msg {
		res, err := d.Dispatch(ctx, line)
		return dispatchedMsg{line: line, res: res, err: err}
	}
}

func (m Model) handleResult(msg dispatchedMsg) (tea.Model, tea.Cmd) {
	m.record(msg)

	if msg.err != nil {
		m.append(m.printer.Error(msg.err))
		return m, nil
	}

	if msg.res.Kind == shell.ResultExit {
		if !m.opts.ConfirmExit {
			m.quitting = true
			return m, tea.Quit
		}
		m.confirming = true
		m.input.Placeholder = placeholderConfirm
		m.append(m.printer.Notice(shell.ExitPrompt))
		return m, nil
	}

	if out := m.dispatcher.Render(m.printer, msg.res); out != "" {
		m.append(out)
	}
	return m, nil
}

func (m Model) answerConfirm(answer string) (tea.Model, tea.Cmd) {
	m.confirming = false
	m.input.Placeholder = placeholderCommand

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		m.quitting = true
		return m, tea.Quit
	default:
		m.append(m.printer.Notice("Aborted program exit."))
		return m, nil
	}
}

func (m *Model) record(msg dispatchedMsg) {
	if m.opts.Recorder == nil || (msg.res.Kind == shell.ResultEmpty && msg.err == nil) {
		return
	}

	entry := &history.Entry{Session: m.opts.SessionID, Line: msg.line, Status: history.StatusOK}
	if msg.res.Command != nil {
		entry.Command = msg.res.Command.Name
	}
	if msg.res.Kind.IsMeta() {
		entry.Status = history.StatusMeta
	}
	if msg.err != nil {
		entry.Status = history.StatusError
		entry.Error = msg.err.Error()
	}

	if err := m.opts.Recorder.Record(m.ctx, entry); err != nil {
		m.logger.WarnWithErr("failed to record history", err)
	}
}

func (m *Model) append(block string) {
	m.transcript = append(m.transcript, block)
	m.updateContent()
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// Transcript returns everything shown so far, one block per entry
func (m Model) Transcript() string {
	return strings.Join(m.transcript, "\n")
}

// Quitting reports whether the model asked the program to quit
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(InputStyle.Width(max(10, m.width-2)).Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m Model) renderHeader() string {
	title := RenderTitle("chbrowse")
	sub := SubtitleStyle.Render("OCR 2016 Coding Challenges")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", sub)
}

func (m Model) renderFooter() string {
	help := "Enter: Run • Ctrl+L: Clear • Esc/Ctrl+C: Quit"
	status := "ready"
	if m.running {
		status = m.spinner.View() + " running"
	} else if m.confirming {
		status = "confirm exit"
	}

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-lipgloss.Width(status)-4)),
			status,
		),
	)
}
