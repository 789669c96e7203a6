package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/cottand/lamb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
show_values = false
prompt = "λ "
log_level = "debug"
log_sections = ["inference", "eval"]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.ShowTypes)
	assert.False(t, cfg.ShowValues)
	assert.Equal(t, "λ ", cfg.Prompt)
	assert.Equal(t, "| ", cfg.ContinuationPrompt)
	assert.Equal(t, []string{"inference", "eval"}, cfg.LogSections)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFromConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "lamb"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "lamb", "config.toml"), []byte("color = false\n"), 0o644))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Color)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "colour = true\n",
		"bad level":    `log_level = "loud"` + "\n",
		"invalid toml": "prompt = \n",
	}
	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, contents))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseShow(t *testing.T) {
	cases := map[string][2]bool{
		"types":  {true, false},
		"values": {false, true},
		"both":   {true, true},
		"Both":   {true, true},
	}
	for show, expected := range cases {
		types, values, err := config.ParseShow(show)
		require.NoError(t, err)
		assert.Equal(t, expected, [2]bool{types, values}, show)
	}

	_, _, err := config.ParseShow("everything")
	assert.Error(t, err)

	cfg := config.Default()
	require.NoError(t, cfg.SetShow("types"))
	assert.True(t, cfg.ShowTypes)
	assert.False(t, cfg.ShowValues)
}
