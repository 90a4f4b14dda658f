// Package cmd wires the gitus subcommands and the interactive menu.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daxog/gitus/internal/apperr"
	"github.com/daxog/gitus/internal/gitcfg"
)

var rootCmd = &cobra.Command{
	Use:   "gitus",
	Short: "Switch between multiple Git user identities",
	Long: `gitus stores named Git identity profiles (username, email, alias) in a
JSON file in your home directory and switches the active Git identity by
setting git config user.name and user.email.

Run without a subcommand to use the interactive menu.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: checkEnvironment,
	RunE:              runMenu,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// checkEnvironment rejects every operation when git is missing or the
// working directory is not inside a Git work tree.
func checkEnvironment(cmd *cobra.Command, args []string) error {
	if !gitcfg.IsGitInstalled() {
		return fmt.Errorf("git is not installed")
	}

	inside, err := gitcfg.NewClient().IsInsideRepository()
	if err != nil {
		return fmt.Errorf("failed to detect git repository: %w", err)
	}
	if !inside {
		return apperr.ErrNotInRepository
	}
	return nil
}
