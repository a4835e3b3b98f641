package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrThrottled marks a transient backend rejection that the retrier is
	// allowed to absorb. Every other backend error propagates as-is.
	ErrThrottled = fmt.Errorf("analysis backend throttled the request")

	// ErrJobFailed is terminal: the backend reported the job as FAILED.
	ErrJobFailed = fmt.Errorf("analysis job failed")

	// ErrPollTimeout is raised after the poll attempt budget is spent
	// without the job reaching a terminal success.
	ErrPollTimeout = fmt.Errorf("analysis job did not complete within the poll budget")

	ErrRetriesExhausted     = fmt.Errorf("retries exhausted")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrMissingField         = fmt.Errorf("required field missing from extracted data")
	ErrInvalidRequest       = fmt.Errorf("invalid request")
)

// Throttled wraps err so that IsRetryable recognises it.
func Throttled(err error) error {
	return fmt.Errorf("%w: %w", ErrThrottled, err)
}

// IsRetryable reports whether err may be absorbed by backoff and retried.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrThrottled)
}

// MissingField names the alias that was expected in the extracted data.
func MissingField(alias string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, alias)
}
