package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Policy.ZeroSalesThreshold != 1.0 {
		t.Errorf("zero sales threshold = %v, want 1.0", cfg.Policy.ZeroSalesThreshold)
	}
	if cfg.Policy.ShareGapThreshold != 0.03 {
		t.Errorf("share gap threshold = %v, want 0.03", cfg.Policy.ShareGapThreshold)
	}
	if cfg.Policy.WinnerMinCost != 50 || cfg.Policy.WinnerMinROAS != 3 {
		t.Errorf("winner thresholds = %v/%v, want 50/3", cfg.Policy.WinnerMinCost, cfg.Policy.WinnerMinROAS)
	}
	if cfg.Policy.MaxIssues != 12 || cfg.Policy.MaxActions != 18 {
		t.Errorf("caps = %d/%d, want 12/18", cfg.Policy.MaxIssues, cfg.Policy.MaxActions)
	}
	if cfg.HTTPTimeout() != 15*time.Second {
		t.Errorf("timeout = %v, want 15s", cfg.HTTPTimeout())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  port: "9090"
logging:
  level: debug
datasets:
  campaign:
    source: /data/campaign_daily.csv
policy:
  zero_sales_threshold: 2.5
  max_actions: 5
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("level = %v, want debug", cfg.LogLevel())
	}
	if cfg.Datasets["campaign"].Source != "/data/campaign_daily.csv" {
		t.Errorf("dataset source = %q", cfg.Datasets["campaign"].Source)
	}
	if cfg.Policy.ZeroSalesThreshold != 2.5 {
		t.Errorf("threshold = %v, want 2.5", cfg.Policy.ZeroSalesThreshold)
	}
	// unset policy fields still get defaults
	if cfg.Policy.MaxIssues != 12 {
		t.Errorf("max issues = %d, want default 12", cfg.Policy.MaxIssues)
	}
	if cfg.Policy.MaxActions != 5 {
		t.Errorf("max actions = %d, want 5", cfg.Policy.MaxActions)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ADSIGHT_PORT", "7070")
	t.Setenv("ADSIGHT_LOG_LEVEL", "warn")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, want env override 7070", cfg.Server.Port)
	}
	if cfg.LogLevel() != slog.LevelWarn {
		t.Errorf("level = %v, want warn", cfg.LogLevel())
	}
}
