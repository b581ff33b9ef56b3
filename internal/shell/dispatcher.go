// File: dispatcher.go
// Title: Browser Command Dispatcher
// Description: Routes a raw input line to a browser meta-command, a
//              challenge's description or usage, or the challenge handler
//              after argument-count validation.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: TCOL executor with object/method routing
// - 2026-10-19 v0.2.0: Rewritten as the challenge dispatcher

package shell

import (
	"context"
	"strings"

	"github.com/msto63/chbrowse/internal/console"
	"github.com/msto63/chbrowse/internal/history"
	"github.com/msto63/chbrowse/internal/registry"

	cblog "github.com/msto63/chbrowse/foundation/core/log"
	cbstringx "github.com/msto63/chbrowse/foundation/utils/stringx"
)

// Meta-commands, matched case-insensitively against the whole trimmed line
var (
	HelpCommands    = []string{"/?", "?", "help"}
	ListCommands    = []string{"l", "list", "--list", "challenges"}
	ExitCommands    = []string{"e", "exit", "q", "quit"}
	HistoryCommands = []string{"history"}
)

// Flags recognized as the token after a command identifier
var (
	DescriptionFlags = []string{"-d", "--description"}
	UsageFlags       = []string{"-h", "--help", "/?"}
)

// DefaultHistoryLimit is the number of lines the history meta-command shows
const DefaultHistoryLimit = 20

// ResultKind tells the caller how to present a Result
type ResultKind int

const (
	ResultEmpty ResultKind = iota
	ResultHelp
	ResultList
	ResultExit
	ResultHistory
	ResultDescription
	ResultUsage
	ResultOutput
)

// String returns the kind name
func (k ResultKind) String() string {
	switch k {
	case ResultEmpty:
		return "empty"
	case ResultHelp:
		return "help"
	case ResultList:
		return "list"
	case ResultExit:
		return "exit"
	case ResultHistory:
		return "history"
	case ResultDescription:
		return "description"
	case ResultUsage:
		return "usage"
	case ResultOutput:
		return "output"
	default:
		return "unknown"
	}
}

// IsMeta reports whether the kind came from a browser meta-command
func (k ResultKind) IsMeta() bool {
	switch k {
	case ResultHelp, ResultList, ResultExit, ResultHistory:
		return true
	default:
		return false
	}
}

// Result is the outcome of dispatching one line
type Result struct {
	Kind     ResultKind
	Command  *registry.Command
	Args     []string
	Output   string
	Commands []*registry.Command
	History  []*history.Entry
}

// Options configures a Dispatcher
type Options struct {
	Logger       *cblog.Logger
	History      history.Lister
	HistoryLimit int
}

// Dispatcher resolves and runs browser input against a registry
type Dispatcher struct {
	registry     *registry.Registry
	history      history.Lister
	historyLimit int
	logger       *cblog.Logger
}

// NewDispatcher creates a dispatcher for reg
func NewDispatcher(reg *registry.Registry, opts Options) *Dispatcher {
	if opts.Logger == nil {
		opts.Logger = cblog.GetDefault()
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}

	return &Dispatcher{
		registry:     reg,
		history:      opts.History,
		historyLimit: opts.HistoryLimit,
		logger:       opts.Logger.WithField("component", "dispatcher"),
	}
}

// Registry returns the registry commands are resolved against
func (d *Dispatcher) Registry() *registry.Registry {
	return d.registry
}

// Dispatch handles one raw input line. Meta-commands are checked on the
// whole trimmed line before tokenizing. Escaped trailing whitespace is kept
// for the tokenizer.
func (d *Dispatcher) Dispatch(ctx context.Context, raw string) (Result, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Result{Kind: ResultEmpty}, nil
	}

	switch {
	case cbstringx.ContainsFold(HelpCommands, line):
		return Result{Kind: ResultHelp}, nil
	case cbstringx.ContainsFold(ListCommands, line):
		return Result{Kind: ResultList, Commands: d.registry.Commands()}, nil
	case cbstringx.ContainsFold(ExitCommands, line):
		return Result{Kind: ResultExit}, nil
	case d.history != nil && cbstringx.ContainsFold(HistoryCommands, line):
		entries, err := d.history.Recent(ctx, d.historyLimit)
		if err != nil {
			return Result{Kind: ResultHistory}, err
		}
		return Result{Kind: ResultHistory, History: entries}, nil
	}

	return d.DispatchArgs(ctx, Tokenize(TrimUnescaped(raw, DefaultSyntax)))
}

// DispatchArgs runs already tokenized input. tokens[0] is the command
// identifier.
func (d *Dispatcher) DispatchArgs(ctx context.Context, tokens []string) (Result, error) {
	if len(tokens) == 0 {
		return Result{Kind: ResultEmpty}, nil
	}

	cmd, err := d.registry.Resolve(tokens[0])
	if err != nil {
		d.logger.LogError(err)
		return Result{}, err
	}

	args := tokens[1:]
	result := Result{Command: cmd, Args: args}

	if len(args) > 0 {
		switch {
		case containsExact(DescriptionFlags, args[0]):
			result.Kind = ResultDescription
			return result, nil
		case containsExact(UsageFlags, args[0]):
			result.Kind = ResultUsage
			return result, nil
		}
	}

	if err := d.registry.Validate(cmd, args); err != nil {
		d.logger.LogError(err)
		return result, err
	}

	d.logger.Debug("running command", cblog.Fields{"command": cmd.Name, "args": len(args)})

	out, err := cmd.Handler(ctx, args)
	if err != nil {
		d.logger.LogError(err)
		return result, err
	}

	result.Kind = ResultOutput
	result.Output = out
	return result, nil
}

// HelpEntries describes the meta-commands for the help screen
func (d *Dispatcher) HelpEntries() []console.HelpEntry {
	entries := []console.HelpEntry{
		{Names: HelpCommands, Text: "Display this help menu."},
		{Names: ListCommands, Text: "Display a list of all challenges."},
	}
	if d.history != nil {
		entries = append(entries, console.HelpEntry{Names: HistoryCommands, Text: "Show recently entered lines."})
	}
	return append(entries, console.HelpEntry{Names: ExitCommands, Text: "Quit the program."})
}

// Render formats a result with p. Exit and empty results render as "".
func (d *Dispatcher) Render(p *console.Printer, res Result) string {
	switch res.Kind {
	case ResultHelp:
		return p.Help(d.HelpEntries())
	case ResultList:
		return p.Challenges(res.Commands)
	case ResultHistory:
		return p.History(res.History)
	case ResultDescription:
		return p.Description(res.Command)
	case ResultUsage:
		return p.Usage(res.Command)
	case ResultOutput:
		return p.Output(res.Output)
	default:
		return ""
	}
}

func containsExact(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
