package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"hotones/pkg/config"
	"hotones/pkg/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// setup loads the configuration and builds the logger. The --log-level flag
// wins over the config file.
func (o *rootOptions) setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	return cfg, logging.New(level, os.Stderr), nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "hotones",
		Short:         "Scrape and browse the Hot Ones episode database",
		Long:          "hotones scrapes the episode database page into a tagged, video-linked catalog and lets you browse it from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file (default: ./"+config.DefaultFileName+" if present)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	cmd.AddCommand(newScrapeCommand(opts))
	cmd.AddCommand(newBrowseCommand(opts))
	return cmd
}
