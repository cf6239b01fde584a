package retry

import (
	"context"
	"time"
)

// Policy is a reusable bounded-retry description. A zero Multiplier (or any
// value below 1) keeps the delay fixed between attempts.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	// Retryable decides whether an error is worth another attempt.
	// A nil predicate retries every error.
	Retryable func(error) bool
}

// Fixed returns a policy with a constant delay between attempts.
func Fixed(maxAttempts int, delay time.Duration) Policy {
	return Policy{
		MaxAttempts: maxAttempts,
		BaseDelay:   delay,
	}
}

// Exponential returns a policy that doubles the delay on each attempt.
func Exponential(maxAttempts int, baseDelay time.Duration) Policy {
	return Policy{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		Multiplier:  2,
	}
}

// Do runs fn until it succeeds, the attempts are exhausted, the error is
// deemed non-retryable, or the context is canceled. The last error is
// returned as-is so callers can match sentinels with errors.Is.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := p.BaseDelay
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			if p.Multiplier > 1 {
				delay = time.Duration(float64(delay) * p.Multiplier)
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}
