package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/ghostfaker/internal/catalog"
	"github.com/trknhr/ghostfaker/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, catalog.MatchSubstring, cfg.MatchMode())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
log_file: /tmp/ghostfaker.log
icon: icons/faker.svg
match: fuzzy
clipboard: false
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/ghostfaker.log", cfg.LogFile)
	assert.Equal(t, "icons/faker.svg", cfg.Icon)
	assert.Equal(t, catalog.MatchFuzzy, cfg.MatchMode())
	assert.False(t, cfg.Clipboard)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_level: debug\nmatch: fuzzy\n")
	t.Setenv("GHOSTFAKER_LOG_LEVEL", "error")
	t.Setenv("GHOSTFAKER_CLIPBOARD", "false")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "fuzzy", cfg.Match)
	assert.False(t, cfg.Clipboard)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrReadConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "log_level: [unterminated")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestLoad_InvalidMatchMode(t *testing.T) {
	path := writeConfig(t, "match: regex\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}
