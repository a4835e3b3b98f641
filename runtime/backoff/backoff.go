// Package backoff wraps transient-failure-prone remote calls in a bounded
// retry loop with pure exponential delay (no jitter).
package backoff

import (
	"context"
	"fmt"
	"time"

	"github.com/choace0427/brightspeed-ai-backend/errors"
)

const (
	DefaultMaxAttempts = 5
	DefaultBaseDelay   = time.Second
)

// Retry invokes op up to maxAttempts times. Only errors the retryable
// predicate accepts are absorbed; anything else propagates immediately
// without consuming further attempts. The wait before retrying attempt i
// (0-indexed) is baseDelay * 2^i. A cancelled context aborts the wait.
//
// Zero maxAttempts/baseDelay fall back to the defaults. When every attempt
// fails the returned error wraps the last underlying one and names the
// attempt count.
func Retry[T any](ctx context.Context, maxAttempts int, baseDelay time.Duration, retryable func(error) bool, op func() (T, error)) (T, error) {
	var zero T
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		if !retryable(err) {
			return zero, err
		}
		lastErr = err

		if attempt == maxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(baseDelay << attempt):
		}
	}
	return zero, fmt.Errorf("%w after %d attempts: %w", errors.ErrRetriesExhausted, maxAttempts, lastErr)
}
