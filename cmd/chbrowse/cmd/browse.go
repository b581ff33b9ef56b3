package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/chbrowse/internal/history"
	"github.com/msto63/chbrowse/internal/shell"
	"github.com/msto63/chbrowse/internal/tui"

	cblog "github.com/msto63/chbrowse/foundation/core/log"
)

var (
	useTUI    bool
	noConfirm bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive challenge browser",
	Long: `Starts the interactive challenge browser.

Type a challenge name, alias or booklet number followed by its arguments.
Add -d for the challenge description or -h for its usage.

Browser commands:
  help, ?, /?              - Show the help
  list, l, challenges      - List all challenges
  history                  - Show recent lines (when history is enabled)
  exit, e, quit, q         - Leave the browser

With --tui the browser runs full-screen:
  Enter     - Run the line
  Ctrl+L    - Clear the transcript
  Esc       - Quit`,
	RunE: runBrowse,
}

func init() {
	addBrowseFlags(browseCmd)
	rootCmd.AddCommand(browseCmd)
}

func addBrowseFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&useTUI, "tui", false, "run the full-screen terminal UI")
	cmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "exit without asking for confirmation")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a := current
	ctx := cmd.Context()

	reg, err := a.registry()
	if err != nil {
		return err
	}

	store, err := a.openHistory()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		if retention := a.cfg.History.Retention.Duration; retention > 0 {
			if n, err := store.Prune(ctx, retention); err != nil {
				a.logger.WarnWithErr("failed to prune history", err)
			} else if n > 0 {
				a.logger.Debug("history pruned", cblog.Fields{"removed": n})
			}
		}
	}

	var (
		lister   history.Lister
		recorder history.Recorder
	)
	if store != nil {
		lister, recorder = store, store
	}

	d := a.dispatcher(reg, lister)
	confirm := a.cfg.General.ConfirmExit && !noConfirm
	sessionID := history.NewSessionID()

	if useTUI {
		model := tui.New(ctx, d, a.printer(cmd.OutOrStdout()), tui.Options{
			Recorder:    recorder,
			ConfirmExit: confirm,
			SessionID:   sessionID,
			Logger:      a.logger,
		})

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			return err
		}
		return nil
	}

	sh := shell.New(d, shell.ShellOptions{
		Printer:     a.printer(cmd.OutOrStdout()),
		Logger:      a.logger,
		Recorder:    recorder,
		ConfirmExit: confirm,
		SessionID:   sessionID,
	})
	return sh.Run(ctx, cmd.InOrStdin())
}
