package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "SLACK_WEBHOOK_URL", "CACHE_FILE", "SQLITE_PATH", "CRON_DAILY", "SECTION_CAP"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not error: %v", err)
	}
	if cfg.Anthropic.Model != "claude-sonnet-4-20250514" {
		t.Errorf("unexpected default model: %q", cfg.Anthropic.Model)
	}
	if cfg.Cache.File != "last_calendar.json" {
		t.Errorf("unexpected default cache file: %q", cfg.Cache.File)
	}
	if cfg.Prompt.SectionCap != 15 || !cfg.Prompt.BoldWatchlist {
		t.Errorf("unexpected prompt defaults: %+v", cfg.Prompt)
	}
	if len(cfg.Watchlist.US) == 0 || len(cfg.Watchlist.CAD) == 0 {
		t.Error("default watchlists must be non-empty")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
anthropic:
  api_key: file-key
prompt:
  section_cap: 8
  bold_watchlist: false
watchlist:
  us: [AAPL]
  cad: [SHOP]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ANTHROPIC_API_KEY", "env-key")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T/B/X")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Anthropic.APIKey != "env-key" {
		t.Errorf("env must override file, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.Slack.WebhookURL != "https://hooks.slack.com/services/T/B/X" {
		t.Errorf("unexpected webhook: %q", cfg.Slack.WebhookURL)
	}
	if cfg.Prompt.SectionCap != 8 || cfg.Prompt.BoldWatchlist {
		t.Errorf("file values not applied: %+v", cfg.Prompt)
	}
	if len(cfg.Watchlist.US) != 1 || cfg.Watchlist.US[0] != "AAPL" {
		t.Errorf("watchlist not replaced: %v", cfg.Watchlist.US)
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if err := cfg.Validate(false); err == nil {
		t.Error("expected missing api key error")
	}

	cfg.Anthropic.APIKey = "key"
	if err := cfg.Validate(false); err == nil {
		t.Error("expected missing webhook error in live mode")
	}
	if err := cfg.Validate(true); err != nil {
		t.Errorf("dry run must not require webhook: %v", err)
	}

	cfg.Slack.WebhookURL = "https://hooks.slack.com/services/T/B/X"
	if err := cfg.Validate(false); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
