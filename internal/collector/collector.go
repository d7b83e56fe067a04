package collector

import (
	"context"
	"log"
	"time"

	"CalendarBot/internal/cache"
	"CalendarBot/internal/calculator"
	"CalendarBot/internal/model"
	"CalendarBot/internal/normalize"
	"CalendarBot/internal/prompt"
	"CalendarBot/internal/retry"
	"CalendarBot/internal/searcher"
	"CalendarBot/internal/validate"
)

// Collector orchestrates one calendar fetch: target day, prompt, search with
// retry, normalize, validate, cache.
type Collector struct {
	Searcher searcher.Searcher
	Prompt   *prompt.Builder
	Cache    *cache.Store
	Retry    retry.Policy
	// Now is the clock source, overridable in tests.
	Now func() time.Time
}

// NewCollector wires a Collector with the search retry policy: 3 attempts,
// 2s base delay, exponential backoff, transient errors only.
func NewCollector(s searcher.Searcher, pb *prompt.Builder, cs *cache.Store) *Collector {
	return &Collector{
		Searcher: s,
		Prompt:   pb,
		Cache:    cs,
		Retry: retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   2 * time.Second,
			Multiplier:  2,
			Retryable:   searcher.IsRetryable,
		},
		Now: time.Now,
	}
}

// Fetch retrieves the next trading day's calendar. It returns the validated
// text and the target day label. A validation rejection or an empty generator
// response yields empty text with a nil error: a bad format is not assumed
// transient and is never retried. The error path is reserved for exhausted
// transient failures.
func (c *Collector) Fetch(ctx context.Context) (string, string, error) {
	now := c.Now()
	target := calculator.NextTradingDay(now)
	targetLabel := target.Format("Monday, January 2, 2006")

	req := model.CalendarRequest{
		ReferenceNow: now,
		TargetDate:   target,
		WatchlistUS:  c.Prompt.Opts.WatchlistUS,
		WatchlistCAD: c.Prompt.Opts.WatchlistCAD,
	}
	p := c.Prompt.Build(req)

	log.Printf("[INFO] fetching calendar for: %s (source: %s)", targetLabel, c.Searcher.Name())

	var raw string
	err := c.Retry.Do(ctx, "calendar search", func() error {
		var searchErr error
		raw, searchErr = c.Searcher.Search(ctx, p)
		return searchErr
	})
	if err != nil {
		return "", targetLabel, err
	}
	if raw == "" {
		return "", targetLabel, nil
	}

	text := normalize.Normalize(raw, normalize.Options{
		BoldWatchlist: c.Prompt.Opts.BoldWatchlist,
		WatchlistUS:   c.Prompt.Opts.WatchlistUS,
		WatchlistCAD:  c.Prompt.Opts.WatchlistCAD,
	})

	if res := validate.Calendar(text); !res.OK {
		log.Printf("[ERROR] calendar validation failed: %s", res.Reason)
		return "", targetLabel, nil
	}

	log.Printf("[INFO] calendar fetched successfully (%d chars)", len(text))
	c.Cache.Save(text, targetLabel)

	return text, targetLabel, nil
}
