package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/chbrowse/internal/challenges/speedtrack"
	"github.com/msto63/chbrowse/internal/console"
)

var (
	offendersLimit  float64
	offendersOutput string
	offendersWatch  bool
)

var offendersCmd = &cobra.Command{
	Use:   "offenders <input>",
	Short: "Write the offenders file for a speed,plate record file",
	Long: `Reads "speed,plate" records from the input file and writes every record
that is speeding, carries an invalid number plate, or both, as
"kind,speed,plate" to <input>_offenders.<ext>.

With --watch the file is regenerated whenever the input changes, until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runOffenders,
}

func init() {
	offendersCmd.Flags().Float64Var(&offendersLimit, "limit", 0, "speed limit in mph (default: from config, 70)")
	offendersCmd.Flags().StringVarP(&offendersOutput, "output", "o", "", "output file (default: <input>_offenders.<ext>)")
	offendersCmd.Flags().BoolVarP(&offendersWatch, "watch", "w", false, "regenerate when the input changes")
	rootCmd.AddCommand(offendersCmd)
}

func runOffenders(cmd *cobra.Command, args []string) error {
	a := current
	input := args[0]

	limit := a.cfg.SpeedTracker.SpeedLimitMPH
	if cmd.Flags().Changed("limit") {
		if offendersLimit < 0 {
			return fmt.Errorf("--limit must not be negative, got %v", offendersLimit)
		}
		limit = offendersLimit
	}

	output := offendersOutput
	if output == "" {
		output = speedtrack.OffendersPath(input, a.cfg.SpeedTracker.OutputDir)
	}

	p := a.printer(cmd.OutOrStdout())

	if !offendersWatch {
		report, err := speedtrack.CreateOffendersFile(cmd.Context(), input, output, limit)
		if err != nil {
			return err
		}
		p.Print(p.Output(report.String()))
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchOffenders(ctx, p, speedtrack.WatchOptions{
		Input:  input,
		Output: output,
		Limit:  limit,
		Logger: a.logger,
	})
}

// watchOffenders generates once, then on every change. Failed regenerations
// are printed and watching continues.
func watchOffenders(ctx context.Context, p *console.Printer, opts speedtrack.WatchOptions) error {
	report := func(r *speedtrack.Report, err error) {
		if err != nil {
			p.Print(p.Error(err))
			return
		}
		p.Print(p.Output(r.String()))
	}

	report(speedtrack.CreateOffendersFile(ctx, opts.Input, opts.Output, opts.Limit))
	p.Print(p.Notice(fmt.Sprintf("Watching %s, press Ctrl+C to stop.", opts.Input)))

	return speedtrack.Watch(ctx, opts, report)
}

