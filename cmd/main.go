// Package main is the entry point for the explorer CLI.
//
// Usage:
//
//	explorer                 # same as serve
//	explorer serve -c cfg.yaml
//	explorer tui --log-file explorer.log
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/explorer/internal/config"
	"github.com/okian/explorer/pkg/logger"
)

// rootCmd serves the web explorer when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Browse REST endpoint descriptors and their JavaScript samples",
	Long: `explorer shows a fixed catalog of REST endpoints as a carousel.

Select an endpoint to read its description and reveal a syntax
highlighted JavaScript fetch example. The catalog is available as a
server rendered web page with a JSON API, or as a terminal UI.

Configuration is read from an optional YAML file and EXPLORER_*
environment variables.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a YAML config file (overrides "+config.EnvConfigFile+")")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// loadConfig loads configuration, honouring the --config flag.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := os.Setenv(config.EnvConfigFile, path); err != nil {
			return nil, err
		}
	}
	return config.Load(ctx)
}

// applyLogLevel applies the configured log level, falling back to info.
func applyLogLevel(ctx context.Context, cfg *config.Config) {
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel),
			logger.Error(err),
		)
		_ = logger.SetLevelString("info")
	}
}
