// Package main provides the seoaudit CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/smallick/ltach-tools/internal/config"
	"github.com/smallick/ltach-tools/internal/linkcheck"
	"github.com/smallick/ltach-tools/internal/logger"
	"github.com/smallick/ltach-tools/internal/page"
	"github.com/smallick/ltach-tools/internal/report"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig    string
	flagOutput    string
	flagFormat    string
	flagTimeout   time.Duration
	flagUserAgent string
	flagVerbose   bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seoaudit <url>",
		Short: "Run a single-page on-page SEO audit",
		Long: `seoaudit fetches one HTML page, extracts on-page SEO metrics
(title, meta description, headings, image alt coverage, word count),
probes every internal link for reachability, and writes a report file.`,
		Args:          cobra.ExactArgs(1),
		RunE:          runAudit,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Report file path (default seo_audit_report.csv)")
	cmd.Flags().StringVar(&flagFormat, "format", "csv", "Report format: csv, markdown, or json")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Per-request timeout (default 10s)")
	cmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "User-Agent header for all requests")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

// runAudit is the main command logic.
func runAudit(cmd *cobra.Command, args []string) error {
	startURL := args[0]
	log := logger.New(os.Stderr, flagVerbose)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Audit.Timeout = config.Duration(flagTimeout)
	}
	if flagUserAgent != "" {
		cfg.Audit.UserAgent = flagUserAgent
	}
	if flagOutput != "" {
		cfg.Audit.Output = flagOutput
	}

	rep := report.New(startURL)
	log.Debug().
		Str("run_id", rep.RunID).
		Str("url", startURL).
		Dur("timeout", cfg.Audit.Timeout.Std()).
		Msg("starting audit")

	auditor := page.New(cfg.Audit.Timeout.Std(), cfg.Audit.UserAgent)
	result, err := auditor.Audit(startURL)
	if err != nil {
		// Start-page fetch failure is the one fatal error.
		return fmt.Errorf("auditing %s: %w", startURL, err)
	}

	log.Info().
		Int("internal_links", len(result.InternalLinks)).
		Int("external_links", len(result.ExternalLinks)).
		Int("word_count", result.WordCount).
		Msg("page parsed")

	checker := linkcheck.New(cfg.Audit.LinkTimeout.Std(), cfg.Audit.UserAgent)
	var results []linkcheck.Result
	if len(result.InternalLinks) > 0 {
		bar := newProgressBar(len(result.InternalLinks), "Checking internal links")
		results = checker.CheckAll(result.InternalLinks, func(string) {
			bar.Add(1)
		})
		fmt.Fprintln(os.Stderr)
	}

	broken := linkcheck.Broken(results)
	brokenList := make([]string, 0, len(broken))
	for _, b := range broken {
		brokenList = append(brokenList, b.Annotated())
	}

	rep.Pages = append(rep.Pages, report.Page{
		URL:               result.URL,
		Title:             result.Title,
		MetaDescription:   result.MetaDescription,
		H1Count:           len(result.H1s),
		MissingAltCount:   result.MissingAlt,
		WordCount:         result.WordCount,
		InternalLinkCount: len(result.InternalLinks),
		BrokenLinkCount:   len(brokenList),
		BrokenLinks:       brokenList,
	})

	if err := writeReport(rep, cfg.Audit.Output, flagFormat); err != nil {
		return err
	}

	color.Green("Audit complete: report saved to %s", cfg.Audit.Output)
	fmt.Printf("  Title: %s\n", orMissing(result.Title))
	fmt.Printf("  Meta description: %s\n", orMissing(result.MetaDescription))
	fmt.Printf("  H1 tags: %d  Images missing alt: %d/%d  Words: %d\n",
		len(result.H1s), result.MissingAlt, result.ImageCount, result.WordCount)
	if len(brokenList) > 0 {
		color.Yellow("  Broken internal links: %d of %d", len(brokenList), len(result.InternalLinks))
	} else {
		fmt.Printf("  Internal links OK: %d\n", len(result.InternalLinks))
	}

	return nil
}

// writeReport overwrites the target file in the selected format.
func writeReport(rep *report.Report, path, format string) error {
	var writer func(f *os.File) report.Writer
	switch format {
	case "csv":
		writer = func(f *os.File) report.Writer { return report.NewCSVWriter(f) }
	case "markdown", "md":
		writer = func(f *os.File) report.Writer { return report.NewMarkdownWriter(f) }
	case "json":
		writer = func(f *os.File) report.Writer { return report.NewJSONWriter(f) }
	default:
		return fmt.Errorf("invalid format: %s (must be csv, markdown, or json)", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := writer(f).Write(rep); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetItsString("links"),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func orMissing(s string) string {
	if s == "" {
		return "MISSING"
	}
	return s
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
