package cmd

import (
	"log/slog"

	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/cottand/lamb/internal/config"
	"github.com/cottand/lamb/internal/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// settings is what commands run with, after the config file and flags are applied
var settings = config.Default()

var (
	configPath   string
	showFlag     string
	colorFlag    bool
	logLevelFlag string
)

// AddGlobalFlags registers the flags shared by every command on root,
// and loads settings before any of them runs
func AddGlobalFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a TOML config file (default $XDG_CONFIG_HOME/lamb/config.toml)")
	flags.StringVar(&showFlag, "show", "both", "what to print for a program: types, values or both")
	flags.BoolVar(&colorFlag, "color", true, "colour the output")
	flags.StringVarP(&logLevelFlag, "log-level", "l", "error", "log level: debug, info, warn or error")
	root.PersistentPreRunE = loadSettings
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "could not load config")
	}

	flags := cmd.Flags()
	if flags.Changed("show") {
		if err := cfg.SetShow(showFlag); err != nil {
			return err
		}
	}
	if flags.Changed("color") {
		cfg.Color = colorFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.EnableSections(cfg.LogSections...)
	lamberr.SetDebug(level <= slog.LevelDebug)

	settings = cfg
	return nil
}
