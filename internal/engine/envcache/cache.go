package envcache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Request identifies the environment to ensure.
type Request struct {
	CacheRoot string
	Spec      domain.EnvSpec
	// LockTimeout bounds the wait for a concurrent build. Zero waits until ctx is done.
	LockTimeout time.Duration
}

// Result describes the ensured environment.
type Result struct {
	Env    domain.Environment
	Status domain.EnvStatus
}

// Cache maps dependency specs to built environments, building each at most once.
type Cache struct {
	builder *Builder
	locker  ports.Locker
	store   ports.ManifestStore
	tracer  ports.Tracer
	logger  ports.Logger

	requestGroup singleflight.Group
}

// NewCache creates a new Cache.
func NewCache(
	builder *Builder,
	locker ports.Locker,
	store ports.ManifestStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Cache {
	return &Cache{
		builder: builder,
		locker:  locker,
		store:   store,
		tracer:  tracer,
		logger:  logger,
	}
}

// Ensure returns the environment for req.Spec, building it if no complete
// environment exists.
//
// Across processes, the check-then-build sequence runs under the environment's
// file lock; within a process, concurrent callers for the same environment
// share one attempt.
func (c *Cache) Ensure(ctx context.Context, req Request) (Result, error) {
	env := domain.NewEnvironment(req.CacheRoot, req.Spec)

	v, err, _ := c.requestGroup.Do(env.LockPath(), func() (any, error) {
		return c.ensure(ctx, env, req.LockTimeout)
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Env: env, Status: v.(domain.EnvStatus)}, nil
}

func (c *Cache) ensure(ctx context.Context, env domain.Environment, timeout time.Duration) (domain.EnvStatus, error) {
	ctx, span := c.tracer.Start(ctx, "ensure environment")
	defer span.End()
	span.SetAttribute("env.key", env.Key())

	status, err := c.ensureLocked(ctx, env, timeout)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttribute("env.status", string(status))
	return status, nil
}

func (c *Cache) ensureLocked(ctx context.Context, env domain.Environment, timeout time.Duration) (domain.EnvStatus, error) {
	complete, err := c.complete(env)
	if err != nil {
		return "", err
	}
	if complete {
		c.logger.Debug(fmt.Sprintf("using cached environment %s", env.Root()))
		return domain.EnvStatusCached, nil
	}

	if err := os.MkdirAll(env.CacheRoot(), domain.DirPerm); err != nil {
		return "", errors.Join(domain.ErrCacheRootUnavailable, zerr.With(zerr.Wrap(err, "mkdir failed"), "path", env.CacheRoot()))
	}

	lock, err := c.acquire(ctx, env.LockPath(), timeout)
	if err != nil {
		return "", err
	}
	defer c.release(lock)

	// Another process may have finished the build while we waited.
	complete, err = c.complete(env)
	if err != nil {
		return "", err
	}
	if complete {
		c.logger.Debug(fmt.Sprintf("environment %s was built concurrently", env.Key()))
		return domain.EnvStatusCached, nil
	}

	status := domain.EnvStatusCreated
	if env.Exists() {
		c.logger.Warn(fmt.Sprintf("removing incomplete environment %s", env.Root()))
		if err := os.RemoveAll(env.Root()); err != nil {
			return "", errors.Join(domain.ErrStaleEnvironment, zerr.With(zerr.Wrap(err, "remove failed"), "path", env.Root()))
		}
		status = domain.EnvStatusRecreated
	}

	c.logger.Info(fmt.Sprintf("creating environment %s", env.Root()))
	if err := c.builder.Build(ctx, env); err != nil {
		return "", err
	}
	return status, nil
}

// Remove deletes the environment with the given key, waiting for any build of it to finish.
func (c *Cache) Remove(ctx context.Context, cacheRoot, key string, timeout time.Duration) error {
	if !domain.IsEnvKey(key) {
		return errors.Join(domain.ErrInvalidEnvKey, zerr.With(zerr.New("not an environment key"), "key", key))
	}

	lock, err := c.acquire(ctx, domain.LockPathFor(cacheRoot, key), timeout)
	if err != nil {
		return err
	}
	defer c.release(lock)

	path := filepath.Join(cacheRoot, key)
	if err := os.RemoveAll(path); err != nil {
		return errors.Join(domain.ErrCleanFailed, zerr.With(zerr.Wrap(err, "remove failed"), "path", path))
	}
	c.logger.Info(fmt.Sprintf("removed environment %s", path))
	return nil
}

// Lookup returns the record for spec without building anything.
func (c *Cache) Lookup(cacheRoot string, spec domain.EnvSpec) (domain.Record, error) {
	env := domain.NewEnvironment(cacheRoot, spec)
	record := domain.Record{Key: env.Key(), Root: env.Root()}
	if !env.Exists() {
		return record, nil
	}
	m, err := c.store.Get(env.Root())
	if err != nil {
		return domain.Record{}, err
	}
	record.Manifest = m
	return record, nil
}

func (c *Cache) complete(env domain.Environment) (bool, error) {
	if !env.Exists() {
		return false, nil
	}
	m, err := c.store.Get(env.Root())
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, nil
	}
	// A manifest for another spec means the directory was not built by this key.
	if !m.Spec().Equal(env.Spec()) {
		c.logger.Warn(fmt.Sprintf("manifest in %s does not match its key", env.Root()))
		return false, nil
	}
	return true, nil
}

func (c *Cache) acquire(ctx context.Context, path string, timeout time.Duration) (ports.Lock, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return c.locker.Acquire(ctx, path)
}

func (c *Cache) release(lock ports.Lock) {
	if err := lock.Release(); err != nil {
		c.logger.Warn(err.Error())
	}
}
