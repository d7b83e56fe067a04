package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CalendarBot/internal/cache"
	"CalendarBot/internal/collector"
	"CalendarBot/internal/config"
	"CalendarBot/internal/notifier"
	"CalendarBot/internal/prompt"
	"CalendarBot/internal/recorder"
	"CalendarBot/internal/runner"
	"CalendarBot/internal/scheduler"
	"CalendarBot/internal/searcher"
)

const usage = `CalendarBot - posts the next trading day's US & Canada economic calendar
and earnings to Slack.

Usage: bot [OPTIONS]

Options:
  --dry-run, -d    Fetch calendar but don't post to Slack (prints to console)
  --cache, -c      Use cached calendar instead of fetching a new one
  --schedule, -s   Run as a daemon on the configured daily cron schedule
  --help, -h       Show this help message

Environment variables:
  ANTHROPIC_API_KEY    Anthropic API key (required)
  SLACK_WEBHOOK_URL    Slack incoming webhook URL (required unless --dry-run)
  CONFIG_PATH          Config file path (default configs/config.yaml)
  CACHE_FILE           Cache file path (default last_calendar.json)
  SQLITE_PATH          Optional run-history database
  CRON_DAILY           Cron spec for --schedule mode
`

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var dryRun, useCache, schedule, help bool
	flag.BoolVar(&dryRun, "dry-run", false, "fetch calendar but don't post")
	flag.BoolVar(&dryRun, "d", false, "shorthand for --dry-run")
	flag.BoolVar(&useCache, "cache", false, "serve from cached calendar")
	flag.BoolVar(&useCache, "c", false, "shorthand for --cache")
	flag.BoolVar(&schedule, "schedule", false, "run on the daily cron schedule")
	flag.BoolVar(&schedule, "s", false, "shorthand for --schedule")
	flag.BoolVar(&help, "help", false, "show help")
	flag.BoolVar(&help, "h", false, "shorthand for --help")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if help {
		fmt.Print(usage)
		os.Exit(0)
	}

	log.Println("[INFO] CalendarBot starting...")
	if dryRun {
		log.Println("[INFO] mode: DRY RUN")
	} else {
		log.Println("[INFO] mode: LIVE")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(dryRun); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init components
	store := cache.NewStore(cfg.Cache.File)

	builder := prompt.NewBuilder(prompt.Options{
		SectionCap:    cfg.Prompt.SectionCap,
		BoldWatchlist: cfg.Prompt.BoldWatchlist,
		WatchlistUS:   cfg.Watchlist.US,
		WatchlistCAD:  cfg.Watchlist.CAD,
	})

	claude := searcher.NewClaudeSearcher(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
	log.Printf("[INFO] search source: %s (%s)", claude.Name(), cfg.Anthropic.Model)

	col := collector.NewCollector(claude, builder, store)

	slack := notifier.NewSlackNotifier(cfg.Slack.WebhookURL)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	run := runner.NewRunner(col, store, slack, rec)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !schedule {
		code := run.Run(ctx, runner.Options{DryRun: dryRun, UseCache: useCache})
		rec.Close()
		os.Exit(code)
	}
	defer rec.Close()

	// Daemon mode: run the pipeline on the daily cron schedule.
	sched := scheduler.NewScheduler(ctx, run)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily task now")
		go sched.RunNow()
	}

	log.Printf("[INFO] CalendarBot is running on schedule %q. Press Ctrl+C to stop.", cfg.Schedule.DailyCron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CalendarBot stopped")
}
