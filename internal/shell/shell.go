// File: shell.go
// Title: Interactive Challenge Browser Loop
// Description: Read-dispatch-print loop over an input stream with optional
//              exit confirmation and history recording.
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package shell

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/msto63/chbrowse/internal/console"
	"github.com/msto63/chbrowse/internal/history"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	cblog "github.com/msto63/chbrowse/foundation/core/log"
)

// ExitPrompt asks the user to confirm leaving the browser
const ExitPrompt = "Are you sure you want to exit the program? (Y/N)"

// ShellOptions configures a Shell
type ShellOptions struct {
	Printer     *console.Printer
	Logger      *cblog.Logger
	Recorder    history.Recorder
	ConfirmExit bool
	SessionID   string
}

// Shell is the line-oriented challenge browser
type Shell struct {
	dispatcher  *Dispatcher
	printer     *console.Printer
	recorder    history.Recorder
	confirmExit bool
	sessionID   string
	logger      *cblog.Logger
}

// New creates a shell around d
func New(d *Dispatcher, opts ShellOptions) *Shell {
	if opts.Printer == nil {
		opts.Printer = console.New(console.Options{Color: true})
	}
	if opts.Logger == nil {
		opts.Logger = cblog.GetDefault()
	}
	if opts.SessionID == "" {
		opts.SessionID = history.NewSessionID()
	}

	return &Shell{
		dispatcher:  d,
		printer:     opts.Printer,
		recorder:    opts.Recorder,
		confirmExit: opts.ConfirmExit,
		sessionID:   opts.SessionID,
		logger: opts.Logger.
			WithField("component", "shell").
			WithSessionID(opts.SessionID),
	}
}

// SessionID returns the ID recorded with every history entry
func (s *Shell) SessionID() string {
	return s.sessionID
}

// Run prints the banner and help, then reads lines from in until the exit
// command is confirmed, in is exhausted or ctx is cancelled. Cancellation is
// checked between lines; a running command always completes. User errors are
// printed and never end the loop.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.printer.Print(s.printer.Banner())
	s.printer.Print(s.printer.Help(s.dispatcher.HelpEntries()))

	s.logger.Info("browser session started")
	defer s.logger.Info("browser session ended")

	lines := newLineReader(in, MaxLineLength)
	for {
		if ctx.Err() != nil {
			return nil
		}

		s.printer.PrintPrompt()
		line, err := lines.ReadLine()
		if cberror.HasCode(err, cberror.CodeInvalidArgument) {
			s.logger.LogError(err)
			s.printer.Print(s.printer.Error(err))
			continue
		}
		if err != nil {
			s.printer.Print("")
			return s.readError(err)
		}

		res, err := s.dispatcher.Dispatch(ctx, line)
		s.record(ctx, line, res, err)

		if err != nil {
			s.printer.Print(s.printer.Error(err))
			continue
		}

		if res.Kind == ResultExit {
			if s.confirm(lines) {
				s.printer.Print(s.printer.Notice("Requesting to exit program..."))
				return nil
			}
			s.printer.Print(s.printer.Notice("Aborted program exit."))
			continue
		}

		if out := s.dispatcher.Render(s.printer, res); out != "" {
			s.printer.Print(out)
		} else if res.Kind == ResultEmpty {
			s.printer.Print("")
		}
	}
}

// confirm asks for Y/N when exit confirmation is on. End of input counts as
// yes.
func (s *Shell) confirm(lines *lineReader) bool {
	if !s.confirmExit {
		return true
	}

	s.printer.Print(s.printer.Notice(ExitPrompt))
	s.printer.PrintPrompt()
	line, err := lines.ReadLine()
	if errors.Is(err, io.EOF) {
		s.printer.Print("")
		return true
	}
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (s *Shell) record(ctx context.Context, line string, res Result, err error) {
	if s.recorder == nil || res.Kind == ResultEmpty && err == nil {
		return
	}

	entry := &history.Entry{
		Session: s.sessionID,
		Line:    line,
		Status:  history.StatusOK,
	}
	if res.Command != nil {
		entry.Command = res.Command.Name
	}
	if res.Kind.IsMeta() {
		entry.Status = history.StatusMeta
	}
	if err != nil {
		entry.Status = history.StatusError
		entry.Error = err.Error()
	}

	if recErr := s.recorder.Record(ctx, entry); recErr != nil {
		s.logger.WarnWithErr("failed to record history", recErr)
	}
}

func (s *Shell) readError(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return cberror.Wrap(err, "reading input").
		WithCode(cberror.CodeInternal).
		WithOperation("shell.Run")
}
