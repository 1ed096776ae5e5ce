package lock_test

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piprun/internal/adapters/lock"
	"go.trai.ch/piprun/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

func TestFileLocker_AcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.lock")
	locker := lock.NewFileLocker()

	l, err := locker.Acquire(t.Context(), path)
	require.NoError(t, err)
	require.NoError(t, l.Release())

	// The lock can be taken again once released.
	l, err = locker.Acquire(t.Context(), path)
	require.NoError(t, err)
	require.NoError(t, l.Release())

	assert.FileExists(t, path)
}

func TestFileLocker_Timeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.lock")
	locker := lock.NewFileLocker()

	held, err := locker.Acquire(t.Context(), path)
	require.NoError(t, err)
	defer func() { _ = held.Release() }()

	ctx, cancel := context.WithTimeout(t.Context(), 200*time.Millisecond)
	defer cancel()

	_, err = locker.Acquire(ctx, path)
	require.ErrorIs(t, err, domain.ErrLockTimeout)
}

func TestFileLocker_Canceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.lock")
	locker := lock.NewFileLocker()

	held, err := locker.Acquire(t.Context(), path)
	require.NoError(t, err)
	defer func() { _ = held.Release() }()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = locker.Acquire(ctx, path)
	require.ErrorIs(t, err, domain.ErrLockFailed)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFileLocker_MutualExclusion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.lock")
	locker := lock.NewFileLocker()

	var inside, maxInside atomic.Int32
	g, ctx := errgroup.WithContext(t.Context())
	for range 8 {
		g.Go(func() error {
			l, err := locker.Acquire(ctx, path)
			if err != nil {
				return err
			}
			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inside.Add(-1)
			return l.Release()
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), maxInside.Load())
}
