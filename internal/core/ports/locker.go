package ports

import "context"

// Locker provides exclusive cross-process locks backed by lock files.
//
//go:generate go run go.uber.org/mock/mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type Locker interface {
	// Acquire blocks until the lock at path is held or ctx is done.
	// A context deadline is reported as domain.ErrLockTimeout.
	Acquire(ctx context.Context, path string) (Lock, error)
}

// Lock is a held lock.
type Lock interface {
	// Release releases the lock. The lock file is left in place.
	Release() error
}
