// Package httputil provides retry infrastructure for the GitHub API client.
//
// # Retry
//
// [Retry] re-runs an operation when it fails with a transient error:
//
//   - Network errors and dropped connections
//   - 5xx server errors
//   - Per-attempt timeouts
//
// Callers mark transient failures by wrapping them in [RetryableError].
// Anything else (a 404, a rate-limit rejection) is returned immediately
// without consuming further attempts:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// # Backoff
//
// The wait after failed attempt i (counting from 0) is 2^i times the base
// delay, so a 1 second base waits 1s, 2s, 4s and so on. No wait follows
// the final attempt. Each scheduled retry is reported through
// observability.Retry().
package httputil
