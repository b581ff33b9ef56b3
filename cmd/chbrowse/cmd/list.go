package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"challenges"},
	Short:   "List all challenges",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := current

		reg, err := a.registry()
		if err != nil {
			return err
		}

		p := a.printer(cmd.OutOrStdout())
		p.Print(p.Challenges(reg.Commands()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
