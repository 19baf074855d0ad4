package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 30 * time.Second

const (
	// DefaultAttempts is the attempt budget for single-resource lookups.
	DefaultAttempts = 3

	// DefaultAttemptTimeout bounds one request attempt.
	DefaultAttemptTimeout = 5 * time.Second
)

var (
	// ErrNotFound is returned when the requested resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API reports no remaining quota.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTimeout is returned when a request attempt exceeded its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrNetwork is returned for HTTP failures (connection errors, non-2xx
	// responses, undecodable bodies).
	ErrNetwork = errors.New("network error")
)

// RateLimitError is returned for a 403 response reporting zero remaining
// quota. It matches [ErrRateLimited] with errors.Is.
type RateLimitError struct {
	Reset time.Time // Zero if X-RateLimit-Reset was absent
}

func (e *RateLimitError) Error() string {
	if e.Reset.IsZero() {
		return ErrRateLimited.Error()
	}
	return fmt.Sprintf("%s: resets at %s", ErrRateLimited, e.Reset.UTC().Format(time.RFC3339))
}

// Is makes errors.Is(err, ErrRateLimited) succeed.
func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }

// NewHTTPClient creates an HTTP client with an overall safety timeout.
// Per-attempt deadlines are applied through the request context.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }
