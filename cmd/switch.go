package cmd

import (
	"github.com/spf13/cobra"
)

var switchCmd = &cobra.Command{
	Use:   "switch <alias>",
	Short: "Switch the active Git identity",
	Long:  `Set git config user.name and user.email to the values of the stored profile matching the alias.`,
	Args:  cobra.ExactArgs(1),
	Example: `  gitus switch work
  gitus switch personal`,
	RunE: runSwitch,
}

func init() {
	rootCmd.AddCommand(switchCmd)
}

func runSwitch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	return a.switchUser(args[0])
}
