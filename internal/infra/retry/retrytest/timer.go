// Package retrytest provides a backoff timer that never sleeps.
package retrytest

import (
	"sync"
	"time"
)

// Timer fires immediately and records every requested wait.
type Timer struct {
	mu    sync.Mutex
	waits []time.Duration
	c     chan time.Time
}

// NewTimer returns a Timer with no recorded waits.
func NewTimer() *Timer {
	return &Timer{c: make(chan time.Time, 1)}
}

// Start records d and fires at once.
func (t *Timer) Start(d time.Duration) {
	t.mu.Lock()
	t.waits = append(t.waits, d)
	t.mu.Unlock()

	select {
	case t.c <- time.Now():
	default:
	}
}

// Stop is a no-op.
func (t *Timer) Stop() {}

// C returns the firing channel.
func (t *Timer) C() <-chan time.Time {
	return t.c
}

// Waits returns the recorded waits in order.
func (t *Timer) Waits() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]time.Duration(nil), t.waits...)
}
