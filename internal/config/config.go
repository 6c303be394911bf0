// Package config loads service configuration from a YAML file with
// environment-variable overrides for deployment knobs.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   Server             `yaml:"server"`
	Logging  Logging            `yaml:"logging"`
	Datasets map[string]Dataset `yaml:"datasets"`
	Policy   Policy             `yaml:"policy"`
}

type Server struct {
	Port               string `yaml:"port"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// Dataset points at one entity table. Source is a local file path or an
// http(s) URL.
type Dataset struct {
	Source string `yaml:"source"`
}

// Policy mirrors the pipeline thresholds; zero values fall back to defaults in
// applyDefaults so a partial policy block is fine.
type Policy struct {
	ZeroSalesThreshold float64 `yaml:"zero_sales_threshold"`
	ShareGapThreshold  float64 `yaml:"share_gap_threshold"`
	WinnerMinCost      float64 `yaml:"winner_min_cost"`
	WinnerMinROAS      float64 `yaml:"winner_min_roas"`
	MaxIssues          int     `yaml:"max_issues"`
	MaxActions         int     `yaml:"max_actions"`
}

// Load reads the config file, applies defaults and env overrides. An empty
// path yields a pure default config.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.HTTPTimeoutSeconds <= 0 {
		c.Server.HTTPTimeoutSeconds = 15
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Policy.ZeroSalesThreshold <= 0 {
		c.Policy.ZeroSalesThreshold = 1.0
	}
	if c.Policy.ShareGapThreshold <= 0 {
		c.Policy.ShareGapThreshold = 0.03
	}
	if c.Policy.WinnerMinCost <= 0 {
		c.Policy.WinnerMinCost = 50
	}
	if c.Policy.WinnerMinROAS <= 0 {
		c.Policy.WinnerMinROAS = 3
	}
	if c.Policy.MaxIssues <= 0 {
		c.Policy.MaxIssues = 12
	}
	if c.Policy.MaxActions <= 0 {
		c.Policy.MaxActions = 18
	}
	if c.Datasets == nil {
		c.Datasets = map[string]Dataset{}
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ADSIGHT_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("ADSIGHT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// HTTPTimeout returns the fetch timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Server.HTTPTimeoutSeconds) * time.Second
}

// LogLevel maps the configured level name to a slog level.
func (c Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
