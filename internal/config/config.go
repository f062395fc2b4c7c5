// Package config loads the optional YAML configuration file shared by
// the seoaudit and facilityboard commands.
//
// Configuration is entirely optional: every value has a default, a
// config file overrides defaults, and CLI flags override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	// DefaultTimeout matches the original audit tool's per-request
	// timeout. Single-page audits rarely need more.
	DefaultTimeout = 10 * time.Second

	// DefaultLinkTimeout is shorter than the page timeout because link
	// probes are existence checks, not full retrievals.
	DefaultLinkTimeout = 5 * time.Second

	// DefaultUserAgent identifies the tools in HTTP requests.
	DefaultUserAgent = "ltach-tools/1.0 (+https://github.com/smallick/ltach-tools)"

	// DefaultOutput is the audit report path, overwritten on each run.
	DefaultOutput = "seo_audit_report.csv"

	// DefaultTop caps the leaderboard at 50 rows.
	DefaultTop = 50

	// DefaultListen is the facilityboard serve address.
	DefaultListen = ":8787"

	// AppName is used for the XDG config search path.
	AppName = "ltach-tools"
)

// Duration wraps time.Duration so YAML values like "10s" parse.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds settings for both tools. The two sections are
// independent, mirroring the two unrelated flows.
type Config struct {
	Audit AuditConfig `yaml:"audit"`
	Board BoardConfig `yaml:"board"`
}

// AuditConfig configures the single-page SEO audit.
type AuditConfig struct {
	Timeout     Duration `yaml:"timeout"`
	LinkTimeout Duration `yaml:"link_timeout"`
	UserAgent   string   `yaml:"user_agent"`
	Output      string   `yaml:"output"`
}

// BoardConfig configures the facility leaderboard.
type BoardConfig struct {
	SnapshotURL string `yaml:"snapshot_url"`
	Top         int    `yaml:"top"`
	Listen      string `yaml:"listen"`
}

// Load reads the config file at path. An empty path searches the
// working directory and the XDG config home; if nothing is found the
// defaults are returned. A path that is explicitly given but unreadable
// is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = findDefault()
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if explicit {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

// findDefault returns the first existing config file among the default
// locations, or empty if none exists.
func findDefault() string {
	locations := []string{
		"ltach-tools.yaml",
		"ltach-tools.yml",
		filepath.Join(xdg.ConfigHome, AppName, "config.yaml"),
	}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

func applyDefaults(cfg *Config) {
	if cfg.Audit.Timeout == 0 {
		cfg.Audit.Timeout = Duration(DefaultTimeout)
	}
	if cfg.Audit.LinkTimeout == 0 {
		cfg.Audit.LinkTimeout = Duration(DefaultLinkTimeout)
	}
	if cfg.Audit.UserAgent == "" {
		cfg.Audit.UserAgent = DefaultUserAgent
	}
	if cfg.Audit.Output == "" {
		cfg.Audit.Output = DefaultOutput
	}
	if cfg.Board.Top == 0 {
		cfg.Board.Top = DefaultTop
	}
	if cfg.Board.Listen == "" {
		cfg.Board.Listen = DefaultListen
	}
}
