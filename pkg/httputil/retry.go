package httputil

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/ghinsight/pkg/observability"
)

// DefaultBaseDelay is the wait before the first retry.
const DefaultBaseDelay = time.Second

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (timeouts, 5xx responses, dropped connections)
// with this type so that [Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry executes fn up to attempts times with exponential backoff.
// It only retries errors wrapped with [RetryableError]; other errors are
// returned immediately. The wait after failed attempt i (0-based) is
// 2^i × base, and no wait follows the last attempt.
// Returns the last error if all attempts fail, or ctx.Err() if cancelled.
func Retry(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	delay := base
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			observability.Retry().OnRetry(ctx, i+1, delay, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// IsRetryable reports whether err is marked as transient.
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
