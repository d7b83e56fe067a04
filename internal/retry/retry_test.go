package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastPolicy(retryable func(error) bool) Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Multiplier:  2,
		Retryable:   retryable,
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := fastPolicy(nil).Do(context.Background(), "op", func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDo_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	err := fastPolicy(nil).Do(context.Background(), "op", func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDo_MaxAttemptsIsTotalCount(t *testing.T) {
	// "3 attempts" means the first try plus two retries; the third failure
	// returns without another sleep.
	calls := 0
	boom := errors.New("boom")
	err := fastPolicy(nil).Do(context.Background(), "op", func() error {
		calls++
		return boom
	})
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped original error, got %v", err)
	}
}

func TestDo_NonRetryableReturnsImmediately(t *testing.T) {
	calls := 0
	fatal := errors.New("bad request")
	err := fastPolicy(func(error) bool { return false }).Do(context.Background(), "op", func() error {
		calls++
		return fatal
	})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if !errors.Is(err, fatal) {
		t.Errorf("expected original error back, got %v", err)
	}
}

func TestDo_ContextCancelAbortsBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	p := Policy{MaxAttempts: 3, BaseDelay: time.Minute, Multiplier: 2}
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := p.Do(ctx, "op", func() error {
		calls++
		return errors.New("transient")
	})
	if calls != 1 {
		t.Errorf("expected 1 call before cancel, got %d", calls)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	err := Policy{}.Do(context.Background(), "op", func() error {
		calls++
		return errors.New("boom")
	})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if err == nil {
		t.Error("expected error")
	}
}
