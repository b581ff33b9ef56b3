package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/msto63/chbrowse/pkg/core/health"
	"github.com/msto63/chbrowse/pkg/core/version"

	cbstringx "github.com/msto63/chbrowse/foundation/utils/stringx"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, history database and output directories",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	a := current
	p := a.printer(cmd.OutOrStdout())

	report := a.checks().Check(cmd.Context())
	for _, c := range report.Checks {
		line := cbstringx.PadRight(string(c.Status), 9, ' ') + " " + cbstringx.PadRight(c.Name, 14, ' ') + " " + c.Message
		if c.Status == health.StatusUnhealthy {
			p.Print(p.Error(fmt.Errorf("%s", line)))
			continue
		}
		p.Print(p.Output(line))
	}
	p.Print(p.Notice(report.String()))

	if !report.Healthy() {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}

func (a *app) checks() *health.Registry {
	r := health.NewRegistry(version.Browser)

	source := a.cfg.Path
	if source == "" {
		source = "built-in defaults"
	}
	r.RegisterFunc("config", func(ctx context.Context) health.CheckResult {
		if err := a.cfg.Validate(); err != nil {
			return health.CheckResult{Status: health.StatusUnhealthy, Message: err.Error()}
		}
		return health.CheckResult{Status: health.StatusHealthy, Message: source}
	})

	r.Register(health.ErrorCheck("challenges", func(ctx context.Context) error {
		_, err := a.registry()
		return err
	}))

	if a.cfg.History.Enabled {
		r.Register(health.ErrorCheck("history", func(ctx context.Context) error {
			store, err := a.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()
			_, err = store.Recent(ctx, 1)
			return err
		}))
	} else {
		r.RegisterFunc("history", func(ctx context.Context) health.CheckResult {
			return health.CheckResult{Status: health.StatusHealthy, Message: "disabled"}
		})
	}

	if dir := a.cfg.SpeedTracker.OutputDir; dir != "" {
		r.Register(health.WritableDirCheck("offenders-dir", dir))
	}
	if file := a.cfg.General.LogFile; file != "" {
		r.Register(health.WritableDirCheck("log-dir", filepath.Dir(file)))
	}

	return r
}
