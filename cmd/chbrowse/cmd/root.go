package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/chbrowse/pkg/core/version"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "chbrowse",
	Short: "Response browser for the OCR 2016 coding challenges",
	Long: `chbrowse is an interactive browser for the OCR 2016 coding challenges.

Challenges:
  1  FactorialFinder - factorial of a whole number, iterative or recursive
  2  SpeedTracker    - number plates, average speeds and offenders files

Without a sub-command the interactive browser starts.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
	RunE:              runBrowse,
}

// Execute runs the root command and releases resources afterwards
func Execute() error {
	defer teardownApp()
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.Version = version.Browser
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CHBROWSE_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	addBrowseFlags(rootCmd)
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
