package envcache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piprun/internal/adapters/cas"
	"go.trai.ch/piprun/internal/adapters/fs"
	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/piprun/internal/core/ports/mocks"
	"go.trai.ch/piprun/internal/engine/envcache"
	"go.uber.org/mock/gomock"
)

func TestCache_Ensure_LockAndSpans(t *testing.T) {
	ctrl := gomock.NewController(t)

	locker := mocks.NewMockLocker(ctrl)
	held := mocks.NewMockLock(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	root := t.TempDir()
	env := domain.NewEnvironment(root, domain.EnvSpec{Requirements: []string{"six"}})

	var started []string
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string) (context.Context, ports.Span) {
			started = append(started, name)
			return ctx, span
		}).AnyTimes()
	span.EXPECT().SetAttribute("env.key", env.Key()).AnyTimes()
	span.EXPECT().SetAttribute("env.status", string(domain.EnvStatusCreated))
	span.EXPECT().End().Times(4)

	locker.EXPECT().Acquire(gomock.Any(), env.LockPath()).DoAndReturn(func(ctx context.Context, _ string) (ports.Lock, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return held, nil
	})
	held.EXPECT().Release().Return(errors.New("unlock failed"))
	log.EXPECT().Warn("unlock failed")

	store := cas.NewStore()
	builder := envcache.NewBuilder(&fakeCreator{}, &fakeInstaller{}, fs.NewVerifier(), store, tracer, "python")
	cache := envcache.NewCache(builder, locker, store, tracer, log)

	res, err := cache.Ensure(t.Context(), envcache.Request{CacheRoot: root, Spec: env.Spec(), LockTimeout: time.Minute})
	require.NoError(t, err)
	assert.Equal(t, domain.EnvStatusCreated, res.Status)
	assert.Equal(t, []string{
		"ensure environment",
		"create environment",
		"install requirements",
		"verify environment",
	}, started)
}

func TestCache_Ensure_LockFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	locker := mocks.NewMockLocker(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	tracer.EXPECT().Start(gomock.Any(), "ensure environment").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		})
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any())
	span.EXPECT().End()

	lockErr := errors.Join(domain.ErrLockFailed, errors.New("permission denied"))
	locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil, lockErr)

	creator := &fakeCreator{}
	store := cas.NewStore()
	builder := envcache.NewBuilder(creator, &fakeInstaller{}, fs.NewVerifier(), store, tracer, "python")
	cache := envcache.NewCache(builder, locker, store, tracer, nopLogger{})

	_, err := cache.Ensure(t.Context(), envcache.Request{CacheRoot: t.TempDir()})
	require.ErrorIs(t, err, domain.ErrLockFailed)
	assert.Equal(t, int32(0), creator.calls.Load())
}
