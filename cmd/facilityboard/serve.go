package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smallick/ltach-tools/internal/config"
	"github.com/smallick/ltach-tools/internal/logger"
	"github.com/smallick/ltach-tools/internal/server"
	"github.com/smallick/ltach-tools/web"
)

var (
	flagListen      string
	flagWatchConfig bool
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the leaderboard web UI",
		Long: `Serve the leaderboard as a small web UI with filter checkboxes, a
metric selector, and a refresh button. Every refresh re-fetches the
snapshot and re-aggregates.`,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&flagListen, "listen", "", "Listen address (default :8787)")
	cmd.Flags().BoolVar(&flagWatchConfig, "watch-config", false, "Reload settings when the config file changes")

	return cmd
}

// runServe runs the HTTP server until interrupted.
func runServe(cmd *cobra.Command, args []string) error {
	log := logger.New(os.Stderr, flagVerbose)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagSnapshotURL != "" {
		cfg.Board.SnapshotURL = flagSnapshotURL
	}
	if cfg.Board.SnapshotURL == "" {
		return fmt.Errorf("no snapshot URL configured (use --snapshot-url or the config file)")
	}
	if flagListen != "" {
		cfg.Board.Listen = flagListen
	}

	srv := server.New(cfg.Board.Listen, settingsFrom(cfg), web.Assets, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagWatchConfig {
		if flagConfig == "" {
			return fmt.Errorf("--watch-config requires --config")
		}
		watcher := server.NewConfigWatcher(flagConfig, func(next *config.Config) {
			srv.UpdateSettings(settingsFrom(next))
		}, log)
		go watcher.Run(ctx)
	}

	return srv.Run(ctx)
}

// settingsFrom maps the board config onto server settings.
func settingsFrom(cfg *config.Config) server.Settings {
	return server.Settings{
		SnapshotURL: cfg.Board.SnapshotURL,
		UserAgent:   config.DefaultUserAgent,
		Timeout:     snapshotTimeout,
		Top:         cfg.Board.Top,
	}
}
