package httputil

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/ghinsight/pkg/observability"
)

var errTransient = errors.New("transient")

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		failures  int
		retryable bool
		wantCalls int
		wantErr   bool
	}{
		{"succeeds first try", 3, 0, true, 1, false},
		{"succeeds after two transient failures", 3, 2, true, 3, false},
		{"exhausts attempts", 3, 5, true, 3, true},
		{"permanent error stops immediately", 3, 5, false, 1, true},
		{"single attempt", 1, 5, true, 1, true},
		{"zero attempts still runs once", 0, 0, true, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), tt.attempts, time.Millisecond, func() error {
				calls++
				if calls <= tt.failures {
					if tt.retryable {
						return &RetryableError{Err: errTransient}
					}
					return errTransient
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("Retry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errTransient) {
				t.Errorf("Retry() error = %v, want wrapped %v", err, errTransient)
			}
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, 5, time.Hour, func() error {
		calls++
		cancel()
		return &RetryableError{Err: errTransient}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

type recordingRetryHooks struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (h *recordingRetryHooks) OnRetry(ctx context.Context, attempt int, delay time.Duration, err error) {
	h.mu.Lock()
	h.delays = append(h.delays, delay)
	h.mu.Unlock()
}

func TestRetry_BackoffDoubles(t *testing.T) {
	hooks := &recordingRetryHooks{}
	observability.SetRetryHooks(hooks)
	defer observability.Reset()

	base := time.Millisecond
	Retry(context.Background(), 4, base, func() error {
		return &RetryableError{Err: errTransient}
	})

	want := []time.Duration{base, 2 * base, 4 * base}
	if len(hooks.delays) != len(want) {
		t.Fatalf("retries = %d, want %d", len(hooks.delays), len(want))
	}
	for i, d := range want {
		if hooks.delays[i] != d {
			t.Errorf("delay[%d] = %v, want %v", i, hooks.delays[i], d)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	wrapped := &RetryableError{Err: errTransient}
	if !IsRetryable(wrapped) {
		t.Error("RetryableError should be retryable")
	}
	if IsRetryable(errTransient) {
		t.Error("plain error should not be retryable")
	}
	if !errors.Is(wrapped, errTransient) {
		t.Error("RetryableError should unwrap to its cause")
	}
}
