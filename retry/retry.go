// Package retry provides bounded exponential-backoff retries for the
// translate call. The first attempt is immediate; attempt n waits
// BaseDelay * 2^(n-1) before running, and no delay follows the last attempt.
// Cancellation always wins: a cancelled operation is never retried.
package retry

import (
	"context"
	"errors"
	"time"
)

// Config specifies how retries should be attempted.
type Config struct {
	// MaxAttempts is the total number of calls made (first attempt + retries).
	// Values <= 0 are treated as 1.
	MaxAttempts int

	// BaseDelay is the pause after the first failed attempt. Each further
	// pause doubles: BaseDelay, 2*BaseDelay, 4*BaseDelay, ...
	BaseDelay time.Duration
}

// Default matches the client's translate call budget: three attempts with
// 1s -> 2s pauses between them.
var Default = Config{
	MaxAttempts: 3,
	BaseDelay:   time.Second,
}

// sleep waits for d or until ctx is cancelled. Replaced in tests to observe
// the exact delay sequence without waiting it out.
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsCancelled reports whether err stems from a cancelled operation rather
// than a transport failure. Cancellations propagate immediately and are not
// surfaced as user-facing errors.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// Do calls op up to cfg.MaxAttempts times, pausing with pure exponential
// backoff between attempts. It returns the first nil error from op, the
// cancellation as soon as one is observed, or the last failure verbatim.
func Do(ctx context.Context, cfg Config, op func() error) error {
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if IsCancelled(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}
		delay := cfg.BaseDelay << uint(attempt)
		if sleepErr := sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}
