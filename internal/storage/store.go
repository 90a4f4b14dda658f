// Package storage persists the profile collection as a JSON file in the
// user's home directory.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/daxog/gitus/internal/apperr"
	"github.com/daxog/gitus/internal/platform"
	"github.com/daxog/gitus/internal/profile"
)

// DefaultFileName is the profiles file created in the home directory.
const DefaultFileName = "user_profiles.json"

// Config selects where the store reads and writes. Dir overrides the
// home directory (used by tests); FileName overrides DefaultFileName.
type Config struct {
	Dir      string
	FileName string
}

// Store loads and saves the profile collection. Every operation resolves
// the path and touches the file fresh; nothing is cached between calls.
type Store struct {
	cfg Config
}

// NewStore creates a Store with the given config.
func NewStore(cfg Config) *Store {
	if cfg.FileName == "" {
		cfg.FileName = DefaultFileName
	}
	return &Store{cfg: cfg}
}

// Path returns the absolute path of the profiles file.
func (s *Store) Path() (string, error) {
	dir := s.cfg.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", &apperr.ConfigError{Reason: "failed to find the home directory", Err: err}
		}
		dir = home
	}
	return filepath.Join(dir, s.cfg.FileName), nil
}

// Load reads the stored collection. An absent or blank file is an empty
// collection; content that is not a JSON array of profiles is a
// ParseError.
func (s *Store) Load() (profile.Collection, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return profile.Collection{}, nil
		}
		return nil, &apperr.IOError{Op: "read", Path: path, Err: err}
	}

	if strings.TrimSpace(string(data)) == "" {
		return profile.Collection{}, nil
	}

	var users profile.Collection
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, &apperr.ParseError{Path: path, Err: err}
	}
	return users, nil
}

// Save serializes the full collection as pretty-printed JSON and
// overwrites the profiles file.
func (s *Store) Save(users profile.Collection) error {
	path, err := s.Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return &apperr.ParseError{Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := platform.MkdirSecure(dir); err != nil {
			return &apperr.IOError{Op: "mkdir", Path: dir, Err: err}
		}
	}
	if err := platform.CreateFileSecure(path, data); err != nil {
		return &apperr.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// RequireNonEmpty fails with ErrNoUsers if the collection is empty, so
// switch/delete/list report a single consistent message.
func RequireNonEmpty(users profile.Collection) error {
	if len(users) == 0 {
		return apperr.ErrNoUsers
	}
	return nil
}
