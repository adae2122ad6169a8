// Package schema runs a store's idempotent schema setup once per process.
package schema

import (
	"context"
	"sync"
)

// Guard runs a setup function until it succeeds once. Concurrent callers
// wait for the running attempt; a failed attempt is retried by the next caller.
type Guard struct {
	mu   sync.Mutex
	done bool
}

// Ensure runs fn unless a previous call already succeeded.
func (g *Guard) Ensure(ctx context.Context, fn func(ctx context.Context) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.done {
		return nil
	}
	if err := fn(ctx); err != nil {
		return err
	}
	g.done = true

	return nil
}
