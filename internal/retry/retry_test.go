package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

var errBusy = errors.New("busy")

func isBusy(err error) bool { return errors.Is(err, errBusy) }

func TestDo_RetriesOnRetryableError(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 3}, isBusy, func() error {
		attempts++
		return errBusy
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_NoRetryOnNonRetryable(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 3}, isBusy, func() error {
		attempts++
		return errors.New("boom")
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_SucceedsAfterRetry(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 3, BaseDelay: time.Millisecond}, isBusy, func() error {
		attempts++
		if attempts == 1 {
			return fmt.Errorf("write: %w", errBusy)
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestDo_NilPredicateRunsOnce(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 5}, nil, func() error {
		attempts++
		return errBusy
	})

	if !errors.Is(err, errBusy) || attempts != 1 {
		t.Fatalf("got err=%v attempts=%d, want errBusy and 1", err, attempts)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Do(ctx, Config{MaxAttempts: 3}, isBusy, func() error {
		attempts++
		return errBusy
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if attempts != 0 {
		t.Fatalf("expected 0 attempts, got %d", attempts)
	}
}

func TestBackoffDelay_NoBaseDelay(t *testing.T) {
	if delay := backoffDelay(0, time.Second, 1); delay != 0 {
		t.Fatalf("expected zero delay, got %v", delay)
	}
}

func TestBackoffDelay_CappedAtMax(t *testing.T) {
	for attempt := 1; attempt < 10; attempt++ {
		if delay := backoffDelay(10*time.Millisecond, 50*time.Millisecond, attempt); delay > 50*time.Millisecond {
			t.Fatalf("attempt %d: delay %v exceeds max", attempt, delay)
		}
	}
}
