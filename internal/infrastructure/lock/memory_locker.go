package lock

import (
	"context"
	"sync"

	"github.com/plantrent/backend/internal/domain/shared"
)

// lockState tracks one key's semaphore and how many goroutines hold or wait
// for it. The last one out removes the map entry.
type lockState struct {
	sem  chan struct{}
	refs int
}

// MemoryKeyedLocker implements KeyedLocker with per-key semaphores held in a
// map. This is suitable for single-instance deployments and testing.
// WARNING: in-process locks do not serialize mutations across instances,
// which leaves concurrent writers from other instances to the database's
// unique index and version checks.
type MemoryKeyedLocker struct {
	mu   sync.Mutex
	keys map[string]*lockState
}

// NewMemoryKeyedLocker creates a new in-process keyed locker
func NewMemoryKeyedLocker() *MemoryKeyedLocker {
	return &MemoryKeyedLocker{
		keys: make(map[string]*lockState),
	}
}

// Acquire blocks until the lock for key is held or ctx is done. The returned
// release function is safe to call more than once.
func (l *MemoryKeyedLocker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	state, ok := l.keys[key]
	if !ok {
		state = &lockState{sem: make(chan struct{}, 1)}
		l.keys[key] = state
	}
	state.refs++
	l.mu.Unlock()

	select {
	case state.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, state)
		return nil, ctx.Err()
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			<-state.sem
			l.unref(key, state)
		})
	}
	return release, nil
}

// unref drops one reference to the key and deletes the entry once nobody
// holds or waits for it.
func (l *MemoryKeyedLocker) unref(key string, state *lockState) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state.refs--
	if state.refs == 0 {
		delete(l.keys, key)
	}
}

// Size returns the number of tracked keys (for testing/monitoring)
func (l *MemoryKeyedLocker) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}

// Ensure MemoryKeyedLocker implements KeyedLocker
var _ shared.KeyedLocker = (*MemoryKeyedLocker)(nil)
