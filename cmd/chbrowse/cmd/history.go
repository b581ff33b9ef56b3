package cmd

import (
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently entered browser lines",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of lines (default: from config, 20)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	a := current
	p := a.printer(cmd.OutOrStdout())

	store, err := a.openHistory()
	if err != nil {
		return err
	}
	if store == nil {
		p.Print(p.Notice("History is disabled."))
		return nil
	}
	defer store.Close()

	limit := a.cfg.History.Limit
	if historyLimit > 0 {
		limit = historyLimit
	}

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	p.Print(p.History(entries))
	return nil
}
