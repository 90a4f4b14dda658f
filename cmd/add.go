package cmd

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <username> <email> <alias>",
	Short: "Add a new Git identity profile",
	Long:  `Store a new profile with the Git username, email, and a unique alias for switching.`,
	Args:  cobra.ExactArgs(3),
	Example: `  gitus add "John Doe" john@work.com work
  gitus add johnd john@home.net personal`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	return a.addUser(args[0], args[1], args[2])
}
