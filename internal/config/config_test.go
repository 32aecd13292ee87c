package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/tarotsim/internal/config"
)

func TestLoadCreatesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := config.Load(config.GetConfigFilePath())
	require.NoError(t, err)
	assert.Equal(t, "three", cfg.DefaultSpread)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, filepath.Join("/data", "tarotsim", "locales"), cfg.LocaleDir)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout.Duration)

	_, err = os.Stat(config.GetConfigFilePath())
	assert.NoError(t, err)
}

func TestLoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_spread = "celtic"
language = "it"

[gemini]
model = "gemini-2.0-flash"
timeout = "45s"
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "celtic", cfg.DefaultSpread)
	assert.Equal(t, "it", cfg.Language)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 45*time.Second, cfg.Gemini.Timeout.Duration)
	// Unset keys keep their defaults
	assert.Equal(t, 15, cfg.Gemini.RequestsPerMinute)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[gemini]
timeout = "soon"
`), 0644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestSetters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, config.SetDefaultSpread(path, "yesno"))
	require.NoError(t, config.SetLanguage(path, "it"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yesno", cfg.DefaultSpread)
	assert.Equal(t, "it", cfg.Language)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout.Duration)
}

func TestResolveAPIKey(t *testing.T) {
	cfg := &config.Config{Gemini: config.Gemini{APIKey: "from-file"}}

	t.Setenv(config.APIKeyEnv, "")
	assert.Equal(t, "from-file", config.ResolveAPIKey("", cfg))
	assert.Equal(t, "", config.ResolveAPIKey("", nil))

	t.Setenv(config.APIKeyEnv, "from-env")
	assert.Equal(t, "from-env", config.ResolveAPIKey("", cfg))
	assert.Equal(t, "from-flag", config.ResolveAPIKey("from-flag", cfg))
}
