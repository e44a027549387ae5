package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Catalog.Pattern)
	assert.Equal(t, "normal", cfg.Log.Level)
	assert.Equal(t, DefaultLogPath, cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.Equal(t, "auto", cfg.Display.Style)
	assert.Equal(t, DefaultWrap, cfg.Display.Wrap)
	require.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browser.yaml")
	content := "catalog:\n  pattern: recipes/**/*.yaml\ndisplay:\n  style: notty\n  wrap: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "recipes/**/*.yaml", cfg.Catalog.Pattern)
	assert.Equal(t, "notty", cfg.Display.Style)
	assert.Equal(t, 60, cfg.Display.Wrap)
	// Untouched keys keep their defaults.
	assert.Equal(t, "normal", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browser.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: \"off\"\n"), 0o644))

	t.Setenv("RECIPES_LOG_LEVEL", "verbose")
	t.Setenv("RECIPES_LOG_FILE_MAX_SIZE", "50")
	t.Setenv("RECIPES_CATALOG_PATTERN", "data/*.xlsx")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "verbose", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, "data/*.xlsx", cfg.Catalog.Pattern)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"RECIPES_LOG_LEVEL", "log.level"},
		{"RECIPES_LOG_FILE_MAX_BACKUPS", "log.file.max_backups"},
		{"RECIPES_DISPLAY_WRAP", "display.wrap"},
		{"RECIPES_SOMETHING_ELSE", "something.else"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level must be one of: off normal verbose"},
		{"bad style", func(c *Config) { c.Display.Style = "neon" }, "display.style must be one of"},
		{"wrap too small", func(c *Config) { c.Display.Wrap = 5 }, "display.wrap must be at least 20"},
		{"wrap too large", func(c *Config) { c.Display.Wrap = 500 }, "display.wrap must be at most 200"},
		{"log size zero", func(c *Config) { c.Log.File.MaxSizeMB = 0 }, "log.file.maxsizemb must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
