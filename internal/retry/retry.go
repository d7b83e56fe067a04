// Package retry provides a small reusable retry policy with exponential
// backoff, applied explicitly at the two external call sites (search, webhook).
package retry

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Policy describes how an operation is retried.
type Policy struct {
	// MaxAttempts is the total attempt count including the first one; the
	// final failure is returned without a further sleep.
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	// Retryable reports whether a failure is transient. A nil predicate
	// retries every error.
	Retryable func(error) bool
}

// Do runs fn under the policy. Non-retryable errors return immediately;
// context cancellation aborts the backoff wait.
func (p Policy) Do(ctx context.Context, name string, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	multiplier := p.Multiplier
	if multiplier <= 0 {
		multiplier = 2
	}

	delay := p.BaseDelay
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt == attempts {
			log.Printf("[ERROR] all %d attempts failed for %s", attempts, name)
			break
		}

		log.Printf("[WARN] attempt %d failed for %s: %v, retrying in %v", attempt, name, err, delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * multiplier)
	}
	return fmt.Errorf("%s: %d attempts exhausted: %w", name, attempts, lastErr)
}
