// Package apperr defines the error kinds shared across gitus.
// Each kind carries structured fields so callers can branch with
// errors.As/errors.Is instead of matching message text.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNoUsers is returned when an operation needs at least one stored
// profile and the profile file is empty or absent.
var ErrNoUsers = errors.New("no users found")

// ErrNotInRepository is returned when the working directory is not inside
// a Git work tree.
var ErrNotInRepository = errors.New("not in a git repository")

// ValidationError reports a rejected input value.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Reason)
}

// UserNotFoundError reports an alias that matched no stored profile.
type UserNotFoundError struct {
	Alias string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user alias not found: '%s'", e.Alias)
}

// GitCommandError reports a git subprocess that exited non-zero. Stderr
// holds the trimmed stderr text of the failed command.
type GitCommandError struct {
	Stderr string
}

func (e *GitCommandError) Error() string {
	return fmt.Sprintf("git command failed: %s", e.Stderr)
}

// EncodingError reports subprocess output that was not valid UTF-8.
type EncodingError struct {
	Source string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s output is not valid UTF-8", e.Source)
}

// ParseError reports a profile file whose content is not a valid JSON
// array of profiles.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failed read or write of the profile file, or a
// subprocess that could not be started.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("i/o error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("i/o error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ConfigError reports an environment problem such as an unresolvable
// home directory.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }
