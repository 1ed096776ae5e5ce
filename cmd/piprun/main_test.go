package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/piprun/internal/adapters/cas"
	"go.trai.ch/piprun/internal/adapters/fs"
	"go.trai.ch/piprun/internal/adapters/lock"
	"go.trai.ch/piprun/internal/adapters/logger"
	"go.trai.ch/piprun/internal/adapters/telemetry"
	"go.trai.ch/piprun/internal/app"
	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports/mocks"
	"go.trai.ch/piprun/internal/engine/envcache"
	"go.uber.org/mock/gomock"
)

type testComponents struct {
	provider  ComponentProvider
	logs      *bytes.Buffer
	creator   *mocks.MockEnvironmentCreator
	executor  *mocks.MockExecutor
	cacheRoot string
}

func newTestComponents(t *testing.T) *testComponents {
	t.Helper()
	ctrl := gomock.NewController(t)

	tc := &testComponents{
		logs:      new(bytes.Buffer),
		creator:   mocks.NewMockEnvironmentCreator(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		cacheRoot: t.TempDir(),
	}
	installer := mocks.NewMockRequirementInstaller(ctrl)
	installer.EXPECT().Name().Return("pip").AnyTimes()

	log := logger.New()
	log.SetOutput(tc.logs)

	store := cas.NewStore()
	tracer := telemetry.NewNoOpTracer()
	builder := envcache.NewBuilder(tc.creator, installer, fs.NewVerifier(), store, tracer, "python")
	cache := envcache.NewCache(builder, lock.NewFileLocker(), store, tracer, log)

	cfg := domain.DefaultConfig()
	cfg.CacheRoot = tc.cacheRoot
	cfg.LockTimeout = time.Second
	application := app.New(cache, store, tc.executor, log, &cfg)

	tc.provider = func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: log}, nil
	}
	return tc
}

func stubEnvironment(_ context.Context, root, _ string) error {
	bin := filepath.Join(root, domain.BinDirName)
	if err := os.MkdirAll(bin, 0o750); err != nil {
		return err
	}
	for _, name := range []string{"python", "pip"} {
		if err := os.WriteFile(filepath.Join(bin, name), nil, 0o755); err != nil { //nolint:gosec // stub executable
			return err
		}
	}
	return nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	tc := newTestComponents(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), tc.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "init failed")
}

// TestRun_UsageError verifies that a missing separator fails before any environment is built.
func TestRun_UsageError(t *testing.T) {
	tc := newTestComponents(t)
	tc.creator.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	exitCode := run(context.Background(), []string{"script.py"}, new(bytes.Buffer), tc.provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, tc.logs.String(), domain.ErrUsage.Error())
}

// TestRun_ExitStatus verifies that the exit status of a spawned program becomes piprun's.
func TestRun_ExitStatus(t *testing.T) {
	tc := newTestComponents(t)
	tc.creator.EXPECT().Create(gomock.Any(), gomock.Any(), "").DoAndReturn(stubEnvironment)
	tc.executor.EXPECT().Handoff(gomock.Any(), gomock.Any()).Return(&domain.ExitError{Code: 7})

	exitCode := run(context.Background(), []string{"--", "-c", "raise SystemExit(7)"}, new(bytes.Buffer), tc.provider)

	assert.Equal(t, 7, exitCode)
	assert.Empty(t, tc.logs.String())
}

// TestRun_BuildFailure verifies that a failed build is reported and exits 1.
func TestRun_BuildFailure(t *testing.T) {
	tc := newTestComponents(t)
	tc.creator.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.Join(domain.ErrBuildFailed, errors.New("virtualenv: not found")))
	tc.executor.EXPECT().Handoff(gomock.Any(), gomock.Any()).Times(0)

	exitCode := run(context.Background(), []string{"--"}, new(bytes.Buffer), tc.provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, tc.logs.String(), "Error:")
}
