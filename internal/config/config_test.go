package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "storage:\n  database_path: "+filepath.Join(dir, "db", "omnis.db")+"\n  backend: sqlite\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, "My Omnis", cfg.UI.Title)
	assert.Equal(t, "system", cfg.UI.Theme)
	assert.Equal(t, ".", cfg.UI.AssetsDir)
	assert.True(t, cfg.Search.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.DirExists(t, filepath.Join(dir, "db"))
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
debug: true
storage:
  backend: preferences
ui:
  theme: dark
  window_width: 500
log:
  level: debug
  json: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, BackendPreferences, cfg.Storage.Backend)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 500, cfg.UI.WindowWidth)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: preferences\n")
	t.Setenv("OMNIS_UI_THEME", "light")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"backend", "storage:\n  backend: redis\n"},
		{"theme", "storage:\n  backend: preferences\nui:\n  theme: sepia\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDefaultMobileConfig(t *testing.T) {
	cfg, err := DefaultMobileConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendPreferences, cfg.Storage.Backend)
	assert.Equal(t, "system", cfg.UI.Theme)
	assert.Equal(t, 400, cfg.UI.WindowWidth)
	assert.NoError(t, cfg.Validate())
}

func TestDecodeReportsBadValues(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ui.window_width", "wide")

	_, err := decode(v)
	assert.ErrorContains(t, err, "decode config")
}

func TestSaveToRoundTrip(t *testing.T) {
	cfg, err := DefaultMobileConfig()
	require.NoError(t, err)
	cfg.UI.Theme = "dark"
	cfg.Debug = true

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.UI.Theme)
	assert.True(t, loaded.Debug)
	assert.Equal(t, BackendPreferences, loaded.Storage.Backend)
}
