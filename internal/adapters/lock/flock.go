// Package lock provides cross-process environment locks backed by flock(2).
package lock

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/flock"
	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/zerr"
)

// RetryInterval is the interval between attempts to take a held lock.
const RetryInterval = 50 * time.Millisecond

// FileLocker implements ports.Locker using advisory file locks.
type FileLocker struct {
	retry time.Duration
}

// NewFileLocker creates a new FileLocker.
func NewFileLocker() *FileLocker {
	return &FileLocker{retry: RetryInterval}
}

// Acquire blocks until the lock at path is held or ctx is done.
// The lock file is created if needed and is never removed: deleting it could
// invalidate a lock taken concurrently by another process.
func (l *FileLocker) Acquire(ctx context.Context, path string) (ports.Lock, error) {
	fl := flock.New(path)

	locked, err := fl.TryLockContext(ctx, l.retry)
	if err == nil && !locked {
		err = ctx.Err()
	}
	if err == nil && !locked {
		err = zerr.New("lock not acquired")
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Join(domain.ErrLockTimeout, zerr.With(zerr.Wrap(err, "lock wait exceeded"), "path", path))
		}
		return nil, errors.Join(domain.ErrLockFailed, zerr.With(zerr.Wrap(err, "flock failed"), "path", path))
	}

	return &fileLock{fl: fl}, nil
}

type fileLock struct {
	fl *flock.Flock
}

// Release unlocks and closes the lock file descriptor.
func (l *fileLock) Release() error {
	if err := l.fl.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to release lock"), "path", l.fl.Path())
	}
	return nil
}
