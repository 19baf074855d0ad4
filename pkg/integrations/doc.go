// Package integrations provides the shared HTTP fetch layer for API clients.
//
// # Overview
//
// [Client] performs GET requests against a base URL with default headers,
// decodes JSON responses and classifies failures:
//
//   - 404 → [ErrNotFound] (terminal)
//   - 403 with X-RateLimit-Remaining: 0 → [RateLimitError] (terminal)
//   - attempt deadline exceeded → [ErrTimeout] (retryable)
//   - anything else → [ErrNetwork] (retryable)
//
// Retryable failures are retried by [httputil.Retry] with exponential
// backoff. When the budget runs out the last classified error is returned,
// so a timeout on the final attempt surfaces as [ErrTimeout].
//
// The client holds no cache; the profile facade consults the cache before
// calling into it. The API-specific client lives in the [github] subpackage.
//
// [github]: github.com/matzehuels/ghinsight/pkg/integrations/github
// [httputil.Retry]: github.com/matzehuels/ghinsight/pkg/httputil.Retry
package integrations
