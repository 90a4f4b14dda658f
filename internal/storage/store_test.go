package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daxog/gitus/internal/apperr"
	"github.com/daxog/gitus/internal/profile"
)

func TestPathDefaults(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(Config{Dir: dir})

	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultFileName), path)
}

func TestPathCustomFileName(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(Config{Dir: dir, FileName: "profiles.json"})

	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "profiles.json"), path)
}

func TestLoadAbsentFile(t *testing.T) {
	s := NewStore(Config{Dir: t.TempDir()})

	users, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoadBlankFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(Config{Dir: dir})
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("  \n\t\n"), 0600))

	users, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(Config{Dir: dir})
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("{not json"), 0600))

	_, err := s.Load()
	var parseErr *apperr.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, filepath.Join(dir, DefaultFileName), parseErr.Path)
}

func TestLoadWrongShape(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(Config{Dir: dir})
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(`{"git_username":"a"}`), 0600))

	_, err := s.Load()
	var parseErr *apperr.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(Config{Dir: t.TempDir()})
	users := profile.Collection{
		{Username: "alice", Email: "alice@example.com", Alias: "work"},
		{Username: "bob", Email: "bob@co.com", Alias: "personal"},
	}

	require.NoError(t, s.Save(users))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, users, loaded)

	// Serializing a loaded collection again is a no-op on file content.
	path, err := s.Path()
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(loaded))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSaveWritesPrettyJSONArray(t *testing.T) {
	s := NewStore(Config{Dir: t.TempDir()})
	require.NoError(t, s.Save(profile.Collection{
		{Username: "alice", Email: "alice@example.com", Alias: "work"},
	}))

	path, err := s.Path()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "\"git_username\": \"alice\"")
	assert.Contains(t, content, "\"git_email\": \"alice@example.com\"")
	assert.Contains(t, content, "\"user_alias\": \"work\"")
	assert.Equal(t, byte('['), content[0])
}

func TestSaveMissingDirectoryIsCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewStore(Config{Dir: dir})

	require.NoError(t, s.Save(profile.Collection{{Username: "a", Email: "a@b.com", Alias: "a"}}))

	users, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRequireNonEmpty(t *testing.T) {
	assert.ErrorIs(t, RequireNonEmpty(nil), apperr.ErrNoUsers)
	assert.ErrorIs(t, RequireNonEmpty(profile.Collection{}), apperr.ErrNoUsers)
	assert.NoError(t, RequireNonEmpty(profile.Collection{{Alias: "work"}}))
}
