package shared

import "context"

// KeyedLocker serializes mutations that share a key. Statement generation
// locks on (customer, year, month) so concurrent requests for the same
// period execute one at a time; different keys proceed in parallel.
type KeyedLocker interface {
	// Acquire blocks until the lock for key is held or ctx is done. The
	// returned release function frees the key and must always be called.
	// A locker whose backing store is unreachable returns ErrUnavailable.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
