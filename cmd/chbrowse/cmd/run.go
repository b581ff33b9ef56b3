package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var runCmd = &cobra.Command{
	Use:   "run [--config file] [-v] [--no-color] <challenge> [args...]",
	Short: "Run a single challenge and exit",
	Long: `Runs one challenge with the given arguments, exactly as if the line had
been typed into the browser. The arguments are taken as the shell split them.

Global flags go before the challenge identifier. Everything from the
identifier on, or after "--", belongs to the challenge.

Examples:
  chbrowse run factorial 5
  chbrowse run factorial -r 20
  chbrowse run --config ./my.toml speed plate "AB12 CDE"
  chbrowse run 2 -d`,
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	PersistentPreRunE:  preRun,
	RunE:               runRun,
}

// runArgs holds the split of the last run invocation
var runArgs struct {
	help      bool
	challenge []string
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// preRun parses the global flags that precede the challenge identifier,
// then sets up the app with them applied.
func preRun(cmd *cobra.Command, args []string) error {
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	fs.SetOutput(cmd.ErrOrStderr())
	fs.AddFlagSet(rootCmd.PersistentFlags())
	fs.BoolVarP(&runArgs.help, "help", "h", false, "help for run")

	flags, rest := splitRunArgs(fs, args)
	runArgs.help = false
	runArgs.challenge = rest
	if err := fs.Parse(flags); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if runArgs.help {
		return nil
	}
	return setupApp(cmd, rest)
}

func runRun(cmd *cobra.Command, _ []string) error {
	if runArgs.help {
		return cmd.Help()
	}
	if len(runArgs.challenge) == 0 {
		return errors.New("run: missing challenge identifier")
	}

	a := current

	reg, err := a.registry()
	if err != nil {
		return err
	}

	d := a.dispatcher(reg, nil)
	res, err := d.DispatchArgs(cmd.Context(), runArgs.challenge)
	if err != nil {
		return err
	}

	if out := d.Render(a.printer(cmd.OutOrStdout()), res); out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// splitRunArgs separates the leading flags known to fs from the challenge
// line. Flag values given as a separate argument stay with their flag.
func splitRunArgs(fs *pflag.FlagSet, args []string) (flags, rest []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return flags, args[i+1:]
		}
		if len(arg) < 2 || arg[0] != '-' {
			return flags, args[i:]
		}
		flags = append(flags, arg)
		if takesValue(fs, arg) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, nil
}

func takesValue(fs *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		f = fs.Lookup(arg[2:])
	case len(arg) == 2:
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
