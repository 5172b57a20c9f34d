package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), DefaultPath)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	contents := `
banner: "hello"
respawn_shell: true
shell: ["/bin/other", "sh"]
`
	require.NoError(t, afero.WriteFile(fsys, DefaultPath, []byte(contents), 0644))

	cfg, err := Load(fsys, DefaultPath)
	require.NoError(t, err)

	assert.Equal(t, "hello", cfg.Banner)
	assert.True(t, cfg.RespawnShell)
	assert.Equal(t, []string{"/bin/other", "sh"}, cfg.Shell)

	// Unset fields keep their defaults.
	assert.Equal(t, Default().Prompt, cfg.Prompt)
	assert.Equal(t, Default().SearchPath, cfg.SearchPath)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, DefaultPath, []byte("no_such_key: 1\n"), 0644))

	_, err := Load(fsys, DefaultPath)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, DefaultPath, []byte("shell: []\n"), 0644))

	_, err := Load(fsys, DefaultPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
