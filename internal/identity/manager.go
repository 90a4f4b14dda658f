// Package identity implements the profile operations: add, delete,
// switch, current, list. Every operation is a fresh load of the stored
// collection; nothing is cached between calls.
package identity

import (
	"fmt"
	"strings"

	"github.com/daxog/gitus/internal/apperr"
	"github.com/daxog/gitus/internal/profile"
	"github.com/daxog/gitus/internal/storage"
	"github.com/daxog/gitus/internal/validation"
)

// GitConfig is the git collaborator the manager drives when switching
// and reading identities.
type GitConfig interface {
	Get(key string) (string, error)
	Set(key, value string) error
	IsInsideRepository() (bool, error)
}

// Manager composes the store, the validator, and the git client.
type Manager struct {
	store     *storage.Store
	validator *validation.Validator
	git       GitConfig
}

// NewManager creates a Manager from its collaborators.
func NewManager(store *storage.Store, validator *validation.Validator, git GitConfig) *Manager {
	return &Manager{store: store, validator: validator, git: git}
}

// Profiles returns the stored collection without any existence check.
// The interactive prompts use it to validate input against the current
// state.
func (m *Manager) Profiles() (profile.Collection, error) {
	return m.store.Load()
}

// AddProfile validates the three fields against the stored collection,
// appends the new profile, and saves.
func (m *Manager) AddProfile(username, email, alias string) error {
	users, err := m.store.Load()
	if err != nil {
		return err
	}

	if err := m.validator.Username(username, users); err != nil {
		return err
	}
	if err := m.validator.Email(email, users); err != nil {
		return err
	}
	if err := m.validator.Alias(alias, users); err != nil {
		return err
	}

	users = append(users, profile.Profile{
		Username: username,
		Email:    email,
		Alias:    alias,
	})
	return m.store.Save(users)
}

// DeleteProfile removes the profile matching alias and saves. The file
// is untouched when no profile matches.
func (m *Manager) DeleteProfile(alias string) error {
	users, err := m.store.Load()
	if err != nil {
		return err
	}
	if err := storage.RequireNonEmpty(users); err != nil {
		return err
	}

	users, removed := users.RemoveByAlias(alias)
	if !removed {
		return &apperr.UserNotFoundError{Alias: alias}
	}
	return m.store.Save(users)
}

// SwitchProfile sets git user.name and then user.email to the values of
// the profile matching alias. There is no rollback: if setting the email
// fails after the name succeeded, the identity is left half-switched.
func (m *Manager) SwitchProfile(alias string) (profile.Profile, error) {
	users, err := m.store.Load()
	if err != nil {
		return profile.Profile{}, err
	}
	if err := storage.RequireNonEmpty(users); err != nil {
		return profile.Profile{}, err
	}

	if alias == m.validator.ReservedAlias() {
		return profile.Profile{}, &apperr.ValidationError{Reason: "invalid alias for switching"}
	}

	user, ok := users.FindByAlias(alias)
	if !ok {
		return profile.Profile{}, &apperr.UserNotFoundError{Alias: alias}
	}

	if err := m.git.Set("user.name", user.Username); err != nil {
		return profile.Profile{}, fmt.Errorf("failed to set git user.name: %w", err)
	}
	if err := m.git.Set("user.email", user.Email); err != nil {
		return profile.Profile{}, fmt.Errorf("failed to set git user.email: %w", err)
	}
	return user, nil
}

// CurrentProfile returns the identity git itself reports, trimmed. It
// does not consult the stored collection.
func (m *Manager) CurrentProfile() (name, email string, err error) {
	name, err = m.git.Get("user.name")
	if err != nil {
		return "", "", fmt.Errorf("failed to get git user.name: %w", err)
	}
	email, err = m.git.Get("user.email")
	if err != nil {
		return "", "", fmt.Errorf("failed to get git user.email: %w", err)
	}
	return strings.TrimSpace(name), strings.TrimSpace(email), nil
}

// ListProfiles returns the stored collection in insertion order.
func (m *Manager) ListProfiles() (profile.Collection, error) {
	users, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	if err := storage.RequireNonEmpty(users); err != nil {
		return nil, err
	}
	return users, nil
}
