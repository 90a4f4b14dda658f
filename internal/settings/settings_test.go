package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daxog/gitus/internal/validation"
)

func TestLoadFromAbsentFile(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
	assert.Equal(t, validation.DefaultLimits(), s.Limits())
}

func TestLoadFromOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
profiles_file = "my_profiles.json"
max_username_length = 10
max_alias_length = 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s, err := LoadFrom(path)
	require.NoError(t, err)

	limits := s.Limits()
	assert.Equal(t, 10, limits.MaxUsernameLength)
	assert.Equal(t, 8, limits.MaxAliasLength)
	// Unset fields keep their defaults.
	assert.Equal(t, 100, limits.MaxEmailLength)
	assert.Equal(t, "back", limits.ReservedAlias)
}

func TestLoadFromMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("max_username_length = [broken"), 0600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestStoreConfig(t *testing.T) {
	cfg, err := Settings{}.StoreConfig()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.FileName)
	assert.Equal(t, "", cfg.Dir)

	cfg, err = Settings{ProfilesFile: "my_profiles.json"}.StoreConfig()
	require.NoError(t, err)
	assert.Equal(t, "my_profiles.json", cfg.FileName)
	assert.Equal(t, "", cfg.Dir)

	cfg, err = Settings{ProfilesFile: "/tmp/gitus/profiles.json"}.StoreConfig()
	require.NoError(t, err)
	assert.Equal(t, "profiles.json", cfg.FileName)
	assert.Equal(t, "/tmp/gitus", cfg.Dir)
}
