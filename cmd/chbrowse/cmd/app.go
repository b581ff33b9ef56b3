package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/chbrowse/internal/challenges"
	"github.com/msto63/chbrowse/internal/challenges/speedtrack"
	"github.com/msto63/chbrowse/internal/console"
	"github.com/msto63/chbrowse/internal/history"
	"github.com/msto63/chbrowse/internal/registry"
	"github.com/msto63/chbrowse/internal/shell"
	"github.com/msto63/chbrowse/pkg/core/config"
	"github.com/msto63/chbrowse/pkg/core/logging"

	cblog "github.com/msto63/chbrowse/foundation/core/log"
)

// app holds what every sub-command shares once flags are parsed
type app struct {
	cfg       *config.Config
	logger    *cblog.Logger
	logCloser io.Closer
}

var current *app

func setupApp(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := logging.NewLogger(logging.LoggerConfig{
		Name:    "chbrowse",
		Level:   cfg.General.LogLevel,
		Format:  cfg.General.LogFormat,
		File:    cfg.General.LogFile,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	cblog.SetDefault(logger)

	if cfg.Path != "" {
		logger.Debug("config loaded", cblog.Fields{"path": cfg.Path})
	}

	teardownApp()
	current = &app{cfg: cfg, logger: logger, logCloser: closer}
	return nil
}

func teardownApp() {
	if current != nil && current.logCloser != nil {
		current.logCloser.Close()
	}
	current = nil
}

func (a *app) printer(out io.Writer) *console.Printer {
	return console.New(console.Options{
		Output: out,
		Prompt: a.cfg.General.Prompt,
		Color:  a.cfg.General.Color && !noColor,
	})
}

func (a *app) speedTracker() speedtrack.Settings {
	return speedtrack.Settings{
		SpeedLimit:     a.cfg.SpeedTracker.SpeedLimitMPH,
		CameraDistance: a.cfg.SpeedTracker.CameraDistanceMiles,
		OutputDir:      a.cfg.SpeedTracker.OutputDir,
	}
}

func (a *app) registry() (*registry.Registry, error) {
	reg, err := challenges.New(challenges.Settings{
		SpeedTracker: a.speedTracker(),
		Logger:       a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("building challenge registry: %w", err)
	}
	return reg, nil
}

// openHistory returns nil without error when history is disabled
func (a *app) openHistory() (history.Store, error) {
	if !a.cfg.History.Enabled {
		return nil, nil
	}
	store, err := history.NewSQLiteStore(history.Config{Path: a.cfg.History.Path})
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return store, nil
}

func (a *app) dispatcher(reg *registry.Registry, lister history.Lister) *shell.Dispatcher {
	return shell.NewDispatcher(reg, shell.Options{
		Logger:       a.logger,
		History:      lister,
		HistoryLimit: a.cfg.History.Limit,
	})
}
