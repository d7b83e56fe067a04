package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Anthropic struct {
		APIKey    string `yaml:"api_key"`
		Model     string `yaml:"model"`
		MaxTokens int    `yaml:"max_tokens"`
	} `yaml:"anthropic"`
	Slack struct {
		WebhookURL string `yaml:"webhook_url"`
	} `yaml:"slack"`
	Cache struct {
		File string `yaml:"file"`
	} `yaml:"cache"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Prompt struct {
		SectionCap    int  `yaml:"section_cap"`
		BoldWatchlist bool `yaml:"bold_watchlist"`
	} `yaml:"prompt"`
	Watchlist struct {
		US  []string `yaml:"us"`
		CAD []string `yaml:"cad"`
	} `yaml:"watchlist"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Defaults are set before parsing so the file only needs to name
// what it changes.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// Defaults
	cfg.Anthropic.Model = "claude-sonnet-4-20250514"
	cfg.Anthropic.MaxTokens = 2000
	cfg.Cache.File = "last_calendar.json"
	cfg.Schedule.DailyCron = "0 0 21 * * 0-4"
	cfg.Prompt.SectionCap = 15
	cfg.Prompt.BoldWatchlist = true
	cfg.Watchlist.US = []string{"AAPL", "MSFT", "NVDA", "AMZN", "GOOGL", "META", "TSLA", "JPM"}
	cfg.Watchlist.CAD = []string{"SHOP", "RY", "TD", "ENB", "CNQ", "BN"}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	}
	if v := os.Getenv("ANTHROPIC_MODEL"); v != "" {
		cfg.Anthropic.Model = v
	}
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		cfg.Slack.WebhookURL = v
	}
	if v := os.Getenv("CACHE_FILE"); v != "" {
		cfg.Cache.File = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SECTION_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Prompt.SectionCap = n
		}
	}

	return cfg, nil
}

// Validate checks that required fields are set. The webhook URL is only
// required when the run will actually deliver.
func (c *Config) Validate(dryRun bool) error {
	if c.Anthropic.APIKey == "" {
		return fmt.Errorf("anthropic.api_key is required (set ANTHROPIC_API_KEY)")
	}
	if c.Slack.WebhookURL == "" && !dryRun {
		return fmt.Errorf("slack.webhook_url is required (set SLACK_WEBHOOK_URL)")
	}
	if c.Prompt.SectionCap <= 0 {
		return fmt.Errorf("prompt.section_cap must be positive")
	}
	return nil
}
