// Package gitcfg wraps the system git binary for reading and writing the
// configured user identity.
package gitcfg

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/daxog/gitus/internal/apperr"
)

// runner executes a git invocation and returns its stdout and stderr.
// A non-zero exit is reported through err as *exec.ExitError.
type runner interface {
	run(args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) run(args ...string) ([]byte, []byte, error) {
	cmd := exec.Command("git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Client invokes git config through the system binary.
type Client struct {
	run runner
}

// NewClient creates a Client backed by the system git binary.
func NewClient() *Client {
	return &Client{run: execRunner{}}
}

// Get returns the raw stdout of `git config --get <key>`.
func (c *Client) Get(key string) (string, error) {
	stdout, _, err := c.exec("config", "--get", key)
	if err != nil {
		return "", err
	}
	return string(stdout), nil
}

// Set runs `git config <key> <value>`.
func (c *Client) Set(key, value string) error {
	_, _, err := c.exec("config", key, value)
	return err
}

// IsInsideRepository reports whether the working directory is inside a
// Git work tree.
func (c *Client) IsInsideRepository() (bool, error) {
	stdout, _, err := c.exec("rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(stdout)) == "true", nil
}

// exec runs git and maps failures: a non-zero exit becomes a
// GitCommandError carrying the trimmed stderr text, non-UTF-8 output
// becomes an EncodingError.
func (c *Client) exec(args ...string) ([]byte, []byte, error) {
	stdout, stderr, err := c.run.run(args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if !utf8.Valid(stderr) {
				return nil, nil, &apperr.EncodingError{Source: "git stderr"}
			}
			return nil, nil, &apperr.GitCommandError{Stderr: strings.TrimSpace(string(stderr))}
		}
		return nil, nil, &apperr.IOError{Op: "exec git", Err: err}
	}
	if !utf8.Valid(stdout) {
		return nil, nil, &apperr.EncodingError{Source: "git stdout"}
	}
	return stdout, stderr, nil
}

// IsGitInstalled checks if git is available on PATH.
func IsGitInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}
