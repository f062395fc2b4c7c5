package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smallick/ltach-tools/internal/board"
	"github.com/smallick/ltach-tools/internal/config"
	"github.com/smallick/ltach-tools/internal/facility"
	"github.com/smallick/ltach-tools/internal/logger"
	"github.com/smallick/ltach-tools/internal/snapshot"
)

// snapshotTimeout bounds the one-shot snapshot fetch.
const snapshotTimeout = 15 * time.Second

var (
	flagLTACH  bool
	flagTBI    bool
	flagMetric string
	flagTop    int
	flagFormat string
)

// NewRenderCmd creates the render subcommand.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the leaderboard once to stdout",
		RunE:  runRender,
	}

	cmd.Flags().BoolVar(&flagLTACH, "ltach", false, "Only long-term acute care hospitals")
	cmd.Flags().BoolVar(&flagTBI, "tbi", false, "Only facilities with a TBI program")
	cmd.Flags().StringVar(&flagMetric, "metric", "count", "Ranking metric: count, carf_count, or therapy_hours")
	cmd.Flags().IntVar(&flagTop, "top", 0, "Row cap (default from config, 50)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or markdown")

	return cmd
}

// runRender performs one aggregation pass and writes the table.
func runRender(cmd *cobra.Command, args []string) error {
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
	if cmd.Flags().Changed("top") {
		cfg.Board.Top = flagTop
	}

	metric, err := facility.ParseMetric(flagMetric)
	if err != nil {
		return err
	}

	loader := snapshot.New(cfg.Board.SnapshotURL, config.DefaultUserAgent, snapshotTimeout, log)

	// Load failure degrades to an empty leaderboard; it is surfaced in
	// the summary line, never fatal.
	records, loadErr := loader.Load(context.Background())

	opts := facility.Options{RequireLTACH: flagLTACH, RequireTBI: flagTBI}
	groups := facility.Aggregate(records, opts)
	ranked := facility.Rank(groups, metric, cfg.Board.Top)
	rows := board.Rows(ranked)

	summary := board.Summary(groups, loadErr)
	if loadErr != nil {
		color.Yellow(summary)
	} else {
		color.Cyan(summary)
	}

	switch flagFormat {
	case "text":
		return board.RenderText(os.Stdout, rows)
	case "markdown", "md":
		return board.RenderMarkdown(os.Stdout, rows, metric)
	default:
		return fmt.Errorf("invalid format: %s (must be text or markdown)", flagFormat)
	}
}
