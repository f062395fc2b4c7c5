package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Run from a temp dir so no ambient config file is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Audit.Timeout.Std() != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", cfg.Audit.Timeout.Std(), DefaultTimeout)
	}
	if cfg.Audit.UserAgent != DefaultUserAgent {
		t.Errorf("user agent = %q, want default", cfg.Audit.UserAgent)
	}
	if cfg.Audit.Output != DefaultOutput {
		t.Errorf("output = %q, want %q", cfg.Audit.Output, DefaultOutput)
	}
	if cfg.Board.Top != DefaultTop {
		t.Errorf("top = %d, want %d", cfg.Board.Top, DefaultTop)
	}
	if cfg.Board.Listen != DefaultListen {
		t.Errorf("listen = %q, want %q", cfg.Board.Listen, DefaultListen)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `audit:
  timeout: 3s
  output: report.csv
board:
  snapshot_url: https://example.com/data/facilities.json
  top: 10
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Audit.Timeout.Std() != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.Audit.Timeout.Std())
	}
	if cfg.Audit.Output != "report.csv" {
		t.Errorf("output = %q, want report.csv", cfg.Audit.Output)
	}
	if cfg.Board.SnapshotURL != "https://example.com/data/facilities.json" {
		t.Errorf("snapshot_url = %q", cfg.Board.SnapshotURL)
	}
	if cfg.Board.Top != 10 {
		t.Errorf("top = %d, want 10", cfg.Board.Top)
	}

	// Unset values still get defaults.
	if cfg.Audit.UserAgent != DefaultUserAgent {
		t.Errorf("user agent = %q, want default", cfg.Audit.UserAgent)
	}
	if cfg.Board.Listen != DefaultListen {
		t.Errorf("listen = %q, want default", cfg.Board.Listen)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for explicitly given missing file")
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("audit:\n  timeout: soon\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable duration")
	}
}
