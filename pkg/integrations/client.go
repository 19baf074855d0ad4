package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/ghinsight/pkg/httputil"
	"github.com/matzehuels/ghinsight/pkg/observability"
)

// Client provides shared HTTP functionality for API clients.
// It handles retry logic, per-attempt timeouts, failure classification
// and common request headers.
type Client struct {
	http      *http.Client
	headers   map[string]string
	baseURL   string
	timeout   time.Duration
	baseDelay time.Duration
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBaseURL sets the URL that endpoints are resolved against.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithAttemptTimeout bounds each individual request attempt.
func WithAttemptTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithBaseDelay sets the backoff base between attempts.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.baseDelay = d
		}
	}
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string, opts ...Option) *Client {
	client := &Client{
		http:      NewHTTPClient(),
		headers:   headers,
		timeout:   DefaultAttemptTimeout,
		baseDelay: httputil.DefaultBaseDelay,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Get fetches endpoint with the default attempt budget and JSON-decodes
// the response into v.
func (c *Client) Get(ctx context.Context, endpoint string, v any) error {
	return c.GetAttempts(ctx, endpoint, DefaultAttempts, v)
}

// GetAttempts fetches endpoint with up to attempts tries.
// Transient failures are retried with exponential backoff; not-found
// and rate-limit responses are returned immediately.
func (c *Client) GetAttempts(ctx context.Context, endpoint string, attempts int, v any) error {
	target := c.resolve(endpoint)
	return httputil.Retry(ctx, attempts, c.baseDelay, func() error {
		return c.attempt(ctx, target, v)
	})
}

func (c *Client) resolve(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

func (c *Client) attempt(ctx context.Context, target string, v any) error {
	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	for k, val := range c.headers {
		req.Header.Set(k, val)
	}

	host, path := req.URL.Host, req.URL.Path
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return classifyTransport(ctx, actx, err)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		if actx.Err() != nil && ctx.Err() == nil {
			return &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrTimeout, err)}
		}
		return &httputil.RetryableError{Err: fmt.Errorf("%w: decode: %v", ErrNetwork, err)}
	}
	return nil
}

// classifyTransport maps a failed round trip to a timeout when the
// attempt deadline fired, and to a network error otherwise.
func classifyTransport(parent, attempt context.Context, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(attempt.Err(), context.DeadlineExceeded) {
		return &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrTimeout, err)}
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrTimeout, err)}
	}
	return &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		rl := &RateLimitError{}
		if reset, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil {
			rl.Reset = time.Unix(reset, 0)
		}
		return rl
	default:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	}
}
