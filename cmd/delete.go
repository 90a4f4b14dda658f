package cmd

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <alias>",
	Short: "Delete a stored identity profile",
	Long:  `Remove the profile matching the alias from the profiles file. The active Git identity is not changed.`,
	Args:  cobra.ExactArgs(1),
	Example: `  gitus delete work
  gitus delete personal`,
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	return a.deleteUser(args[0])
}
