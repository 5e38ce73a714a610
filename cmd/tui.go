package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/explorer/internal/adapters/highlight"
	"github.com/okian/explorer/internal/adapters/tui"
	"github.com/okian/explorer/internal/config"
	"github.com/okian/explorer/internal/domain/catalog"
	"github.com/okian/explorer/internal/domain/explorer"
	"github.com/okian/explorer/pkg/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the endpoints in the terminal",
	Long: `Browse the endpoint catalog in the terminal.

Keys:
  ←/h  previous endpoint     →/l  next endpoint
  1-4  select an endpoint    c    show/hide code
  q    quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("log-file", "", "write logs to this file (default: discard)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := logger.InitWithWriter(w, cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	applyLogLevel(ctx, cfg)

	e := newTerminalExplorer(ctx, cfg, logger.Named("tui"))
	return tui.Run(ctx, e)
}

// newTerminalExplorer builds an explorer highlighting with ANSI colors.
func newTerminalExplorer(ctx context.Context, cfg *config.Config, log logger.Logger) *explorer.Explorer {
	h := highlight.NewTerminal(
		highlight.WithStyle(cfg.HighlightStyle),
		highlight.WithLineNumbers(cfg.LineNumbers),
		highlight.WithCacheSize(cfg.HighlightCacheSize),
	)
	log.Info(ctx, "starting terminal explorer", logger.String("style", h.Style()))
	return explorer.New(catalog.Default(),
		explorer.WithHighlighter(h),
		explorer.WithObserver(func(s explorer.State) {
			log.Debug(ctx, "state changed",
				logger.Int("selected", s.Selected),
				logger.Bool("codeVisible", s.CodeVisible),
			)
		}),
	)
}
