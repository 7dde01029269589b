package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLocale, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLocale, "")

	dir := filepath.Join(home, ".config", "sortable")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`locale = "sv"`), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sv", cfg.Locale)
	assert.Equal(t, defaultMarkerClass, cfg.MarkerClass)
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	t.Setenv(EnvLocale, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
marker_class = "  enhance  "
container_class = "wrap"
placeholder = "Filter rows..."
locale = " en-GB "
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		MarkerClass:    "enhance",
		ContainerClass: "wrap",
		Placeholder:    "Filter rows...",
		Locale:         "en-GB",
	}, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`locale = "fr"`), 0o600))
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLocale, "de")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("marker_class = ["), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
