package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daxog/gitus/internal/profile"
	"github.com/daxog/gitus/internal/ui"
)

const (
	actionSwitch  = "switch user"
	actionAdd     = "add user"
	actionDelete  = "delete user"
	actionCurrent = "show current user"
	actionList    = "show all users"
	actionQuit    = "quit"
)

// runMenu is the interactive loop entered when no subcommand is given.
func runMenu(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	for {
		action, err := ui.SelectOption("select action", []string{
			actionSwitch,
			actionAdd,
			actionDelete,
			actionCurrent,
			actionList,
			actionQuit,
		})
		if err != nil {
			return err
		}

		switch action {
		case actionSwitch:
			err = a.menuSwitch()
		case actionAdd:
			err = a.menuAdd()
		case actionDelete:
			err = a.menuDelete()
		case actionCurrent:
			err = a.showCurrent()
		case actionList:
			err = a.listUsers()
		case actionQuit:
			ui.Warning("quitting")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// menuSwitch lets the user pick an alias to switch to, or "back".
func (a *app) menuSwitch() error {
	users, err := a.manager.ListProfiles()
	if err != nil {
		return err
	}

	alias, err := ui.SelectOption("select user to switch:", a.aliasOptions(users))
	if err != nil {
		return err
	}
	if alias == a.validator.ReservedAlias() {
		return nil
	}
	return a.switchUser(alias)
}

// menuAdd collects the three profile fields, re-prompting on invalid
// input, then stores the profile.
func (a *app) menuAdd() error {
	users, err := a.manager.Profiles()
	if err != nil {
		return err
	}

	username, err := ui.PromptUntilValid("enter git username:", func(input string) error {
		return a.validator.Username(input, users)
	})
	if err != nil {
		return err
	}

	email, err := ui.PromptUntilValid("enter git email:", func(input string) error {
		return a.validator.Email(input, users)
	})
	if err != nil {
		return err
	}

	alias, err := ui.PromptUntilValid("enter alias:", func(input string) error {
		return a.validator.Alias(input, users)
	})
	if err != nil {
		return err
	}

	return a.addUser(username, email, alias)
}

// menuDelete lets the user pick an alias to delete, or "back".
func (a *app) menuDelete() error {
	users, err := a.manager.ListProfiles()
	if err != nil {
		return err
	}

	alias, err := ui.SelectOption("select user to delete:", a.aliasOptions(users))
	if err != nil {
		return err
	}
	if alias == a.validator.ReservedAlias() {
		return nil
	}

	confirmed, err := ui.Confirm(fmt.Sprintf("delete user '%s'?", alias))
	if err != nil {
		return err
	}
	if !confirmed {
		ui.Info("cancelled")
		return nil
	}
	return a.deleteUser(alias)
}

// aliasOptions builds the alias list for menus, with the trailing back
// sentinel.
func (a *app) aliasOptions(users profile.Collection) []string {
	return append(users.Aliases(), a.validator.ReservedAlias())
}
