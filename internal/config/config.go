// Package config holds the settings of the lamb command line, which are
// read from a TOML file and then overridden by flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// ShowTypes and ShowValues select what the REPL and eval print for a program
	ShowTypes  bool `toml:"show_types"`
	ShowValues bool `toml:"show_values"`

	Color              bool   `toml:"color"`
	Prompt             string `toml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt"`

	// LogLevel is a slog level name such as "debug" or "warn"
	LogLevel    string   `toml:"log_level"`
	LogSections []string `toml:"log_sections"`
}

func Default() Config {
	return Config{
		ShowTypes:          true,
		ShowValues:         true,
		Color:              true,
		Prompt:             "> ",
		ContinuationPrompt: "| ",
		LogLevel:           "error",
		LogSections:        []string{"repl"},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/lamb/config.toml, or its equivalent
// for the platform
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lamb", "config.toml"), nil
}

// Load reads the file at path over Default. When path is empty the file at
// DefaultPath is read if there is one
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		if _, err := os.Stat(defaultPath); err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("parsing %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if _, err := cfg.Level(); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return l, nil
}

// SetShow applies a --show option: one of types, values or both
func (c *Config) SetShow(show string) error {
	types, values, err := ParseShow(show)
	if err != nil {
		return err
	}
	c.ShowTypes, c.ShowValues = types, values
	return nil
}

func ParseShow(show string) (types, values bool, err error) {
	switch strings.ToLower(show) {
	case "types":
		return true, false, nil
	case "values":
		return false, true, nil
	case "both":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("unknown display option %q, expected types, values or both", show)
	}
}
