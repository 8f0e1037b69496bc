// Package lock implements adapter.MutationLock for a single process and for
// replicas sharing a Redis instance.
package lock

import (
	"context"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// localLock serialises mutations inside one process. A buffered channel is used
// instead of sync.Mutex so waiting can be abandoned when ctx is done.
type localLock struct {
	ch chan struct{}
}

// NewLocalLock creates an in-process mutation lock.
func NewLocalLock() adapter.MutationLock {
	return &localLock{ch: make(chan struct{}, 1)}
}

// Lock blocks until the lock is held or ctx is done.
func (l *localLock) Lock(ctx context.Context) (func(), error) {
	select {
	case l.ch <- struct{}{}:
		return func() { <-l.ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Ping always succeeds; the lock lives in memory.
func (l *localLock) Ping(context.Context) error {
	return nil
}
