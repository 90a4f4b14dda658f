package cmd

import (
	"fmt"

	"github.com/daxog/gitus/internal/gitcfg"
	"github.com/daxog/gitus/internal/identity"
	"github.com/daxog/gitus/internal/settings"
	"github.com/daxog/gitus/internal/storage"
	"github.com/daxog/gitus/internal/ui"
	"github.com/daxog/gitus/internal/validation"
)

// app bundles the manager and validator built from the settings file.
// Every command builds a fresh one; no state survives an invocation.
type app struct {
	manager   *identity.Manager
	validator *validation.Validator
}

func newApp() (*app, error) {
	cfg, err := settings.Load()
	if err != nil {
		return nil, err
	}

	storeCfg, err := cfg.StoreConfig()
	if err != nil {
		return nil, err
	}

	validator := validation.New(cfg.Limits())
	manager := identity.NewManager(storage.NewStore(storeCfg), validator, gitcfg.NewClient())
	return &app{manager: manager, validator: validator}, nil
}

func (a *app) switchUser(alias string) error {
	user, err := a.manager.SwitchProfile(alias)
	if err != nil {
		return err
	}
	ui.Success(fmt.Sprintf("switched to user: %s", user.Alias))
	return nil
}

func (a *app) addUser(username, email, alias string) error {
	if err := a.manager.AddProfile(username, email, alias); err != nil {
		return err
	}
	ui.Success("added user")
	return nil
}

func (a *app) deleteUser(alias string) error {
	if err := a.manager.DeleteProfile(alias); err != nil {
		return err
	}
	ui.Success("deleted user")
	return nil
}

func (a *app) showCurrent() error {
	name, email, err := a.manager.CurrentProfile()
	if err != nil {
		return err
	}
	fmt.Println(ui.Label("current user:", fmt.Sprintf("%s <%s>", name, email)))
	return nil
}

func (a *app) listUsers() error {
	users, err := a.manager.ListProfiles()
	if err != nil {
		return err
	}

	// Best effort: mark the stored profile matching the live identity.
	name, email, err := a.manager.CurrentProfile()
	if err != nil {
		name, email = "", ""
	}
	ui.PrintProfiles(users, name, email)
	return nil
}
