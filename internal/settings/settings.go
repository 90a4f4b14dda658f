// Package settings reads the optional gitus settings file.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/daxog/gitus/internal/apperr"
	"github.com/daxog/gitus/internal/platform"
	"github.com/daxog/gitus/internal/storage"
	"github.com/daxog/gitus/internal/validation"
)

// FileName is the settings file looked up in the home directory.
const FileName = ".gitus.toml"

// Settings holds the user-tunable knobs. All fields are optional; zero
// values fall back to the defaults.
type Settings struct {
	ProfilesFile      string `toml:"profiles_file"` // overrides user_profiles.json, ~ expands to home
	MaxUsernameLength int    `toml:"max_username_length"`
	MaxEmailLength    int    `toml:"max_email_length"`
	MaxAliasLength    int    `toml:"max_alias_length"`
}

// Load reads the settings file from the home directory. An absent file
// yields the defaults.
func Load() (Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, &apperr.ConfigError{Reason: "failed to find the home directory", Err: err}
	}
	return LoadFrom(filepath.Join(home, FileName))
}

// LoadFrom reads the settings file at path. An absent file yields the
// defaults.
func LoadFrom(path string) (Settings, error) {
	var s Settings
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return s, nil
}

// StoreConfig resolves the settings into a storage config. A relative
// profiles_file stays a bare file name in the home directory; ~ expands.
func (s Settings) StoreConfig() (storage.Config, error) {
	if s.ProfilesFile == "" {
		return storage.Config{}, nil
	}

	path, err := platform.ExpandTilde(s.ProfilesFile)
	if err != nil {
		return storage.Config{}, err
	}
	if filepath.IsAbs(path) {
		return storage.Config{Dir: filepath.Dir(path), FileName: filepath.Base(path)}, nil
	}
	return storage.Config{FileName: path}, nil
}

// Limits resolves the settings into validation limits, filling defaults
// for unset fields.
func (s Settings) Limits() validation.Limits {
	limits := validation.DefaultLimits()
	if s.MaxUsernameLength > 0 {
		limits.MaxUsernameLength = s.MaxUsernameLength
	}
	if s.MaxEmailLength > 0 {
		limits.MaxEmailLength = s.MaxEmailLength
	}
	if s.MaxAliasLength > 0 {
		limits.MaxAliasLength = s.MaxAliasLength
	}
	return limits
}
