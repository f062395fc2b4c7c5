// Package main provides the facilityboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig      string
	flagSnapshotURL string
	flagVerbose     bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facilityboard",
		Short: "Facility leaderboard grouped by US state",
		Long: `facilityboard loads a JSON snapshot of facility records, classifies
them (LTACH, TBI program), infers a US state per record, and renders a
leaderboard ranked by count, CARF accreditations, or therapy hours.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagSnapshotURL, "snapshot-url", "", "Facility snapshot URL")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewServeCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
