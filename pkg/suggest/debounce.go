// Package suggest provides the coordination primitives behind
// search-as-you-type: a debouncer that delays a call until input settles,
// and a generation counter that lets only the latest response through.
package suggest

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a suggestion search fires.
const DefaultDelay = 150 * time.Millisecond

// Task is one scheduled call.
type Task struct {
	timer *time.Timer
	mu    sync.Mutex
	done  bool
}

// Cancel stops the task if it has not fired yet. It reports whether the
// call was prevented; a task that already fired is left alone.
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.timer.Stop()
	return true
}

// run marks the task fired and reports whether fn should execute.
func (t *Task) run() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Debouncer keeps at most one pending Task.
type Debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	pending *Task
}

// NewDebouncer returns a debouncer with the given delay.
// A delay <= 0 selects DefaultDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Schedule cancels the pending task, if any, and arranges for fn to run
// after the delay. fn runs on its own goroutine.
func (d *Debouncer) Schedule(fn func()) *Task {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending.Cancel()
	t := &Task{}
	t.timer = time.AfterFunc(d.delay, func() {
		if t.run() {
			fn()
		}
	})
	d.pending = t
	return t
}

// Cancel stops the pending task. It reports whether a call was prevented.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.pending
	d.pending = nil
	return t.Cancel()
}
