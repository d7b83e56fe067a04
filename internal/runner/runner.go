// Package runner drives one bot invocation: obtain calendar text by priority
// (cache mode, fresh fetch, stale-cache fallback), then print or deliver it.
package runner

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"CalendarBot/internal/cache"
	"CalendarBot/internal/collector"
	"CalendarBot/internal/model"
	"CalendarBot/internal/notifier"
	"CalendarBot/internal/recorder"
	"CalendarBot/internal/retry"
)

// Poster delivers the final text to the chat channel.
type Poster interface {
	Post(text string) (bool, error)
}

// Options selects the invocation mode.
type Options struct {
	DryRun   bool
	UseCache bool
}

// Runner wires one invocation. Exit status is the return value of Run.
type Runner struct {
	Collector *collector.Collector
	Cache     *cache.Store
	Notifier  Poster
	Recorder  recorder.Recorder
	Retry     retry.Policy
	// Out receives dry-run output, defaulting to stdout.
	Out io.Writer
}

// NewRunner wires a Runner with the delivery retry policy: 3 attempts, 1s base
// delay, exponential backoff. Only transport errors are retried; a non-2xx
// webhook response is a non-error failure and goes through at most once.
func NewRunner(col *collector.Collector, cs *cache.Store, poster Poster, rec recorder.Recorder) *Runner {
	return &Runner{
		Collector: col,
		Cache:     cs,
		Notifier:  poster,
		Recorder:  rec,
		Retry: retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   time.Second,
			Multiplier:  2,
		},
		Out: os.Stdout,
	}
}

// Run executes one invocation and returns the process exit code.
func (r *Runner) Run(ctx context.Context, opts Options) int {
	var (
		calendar string
		target   string
		mode     = model.RunModeFresh
	)

	if opts.UseCache {
		if rec, ok := r.Cache.Load(); ok {
			log.Printf("[INFO] using cached calendar from %s", rec.CachedAt.Format(time.RFC3339))
			calendar = rec.Content
			target = rec.Date
			mode = model.RunModeCache
		}
	}

	if calendar == "" {
		text, fetchTarget, err := r.Collector.Fetch(ctx)
		target = fetchTarget
		if err != nil {
			log.Printf("[ERROR] failed to fetch calendar: %v", err)
			if rec, ok := r.Cache.Load(); ok {
				log.Println("[WARN] using stale cached calendar as fallback")
				calendar = notifier.FormatStaleFallback(rec.Date, rec.Content)
				target = rec.Date
				mode = model.RunModeFallback
			}
		} else {
			calendar = text
		}
	}

	if calendar == "" {
		log.Println("[ERROR] failed to fetch calendar and no cache available")
		r.record(mode, target, "FAILED", 0, "no calendar text obtained")
		return 1
	}

	if opts.DryRun {
		io.WriteString(r.Out, notifier.FormatDryRun(calendar))
		r.record(mode, target, "DRY_RUN", len(calendar), "")
		return 0
	}

	var posted bool
	err := r.Retry.Do(ctx, "slack delivery", func() error {
		var postErr error
		posted, postErr = r.Notifier.Post(calendar)
		return postErr
	})
	if err != nil {
		log.Printf("[ERROR] failed to post to slack: %v", err)
		r.record(mode, target, "FAILED", len(calendar), err.Error())
		return 1
	}
	if !posted {
		log.Println("[ERROR] could not post to slack")
		r.record(mode, target, "FAILED", len(calendar), "webhook returned non-2xx status")
		return 1
	}

	log.Println("[INFO] calendar posted to slack")
	r.record(mode, target, "POSTED", len(calendar), "")
	return 0
}

func (r *Runner) record(mode model.RunMode, target, outcome string, chars int, note string) {
	if r.Recorder == nil {
		return
	}
	evt := &model.RunEvent{
		Mode:       mode,
		TargetDate: target,
		Outcome:    outcome,
		Chars:      chars,
		Note:       note,
	}
	if err := r.Recorder.RecordRun(evt); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
