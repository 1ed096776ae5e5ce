// Package app implements the application layer for piprun.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/piprun/internal/adapters/fs" //nolint:depguard // Path probing for interpreter detection
	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/piprun/internal/engine/envcache"
)

// App represents the main application logic.
type App struct {
	cache    *envcache.Cache
	store    ports.ManifestStore
	executor ports.Executor
	logger   ports.Logger
	config   *domain.Config

	pathExists func(string) bool
	environ    func() []string
}

// New creates a new App instance.
func New(
	cache *envcache.Cache,
	store ports.ManifestStore,
	executor ports.Executor,
	logger ports.Logger,
	cfg *domain.Config,
) *App {
	if cfg == nil {
		def := domain.DefaultConfig()
		cfg = &def
	}
	return &App{
		cache:      cache,
		store:      store,
		executor:   executor,
		logger:     logger,
		config:     cfg,
		pathExists: fs.Exists,
		environ:    os.Environ,
	}
}

// WithEnviron replaces the process environment the program inherits.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// RunOptions configures a single run.
type RunOptions struct {
	// CacheDir overrides the configured cache root.
	CacheDir string
}

// Run provisions the environment described by args and hands control to the
// interpreter with the program arguments.
//
// With exec handoff, Run does not return on success.
func (a *App) Run(ctx context.Context, args []string, opts RunOptions) error {
	// 1. Parse; a usage error must precede any cache activity.
	inv, err := domain.ParseInvocation(args, a.pathExists)
	if err != nil {
		return err
	}

	root, err := a.cacheRoot(opts.CacheDir)
	if err != nil {
		return err
	}

	// 2. Ensure the environment
	res, err := a.cache.Ensure(ctx, envcache.Request{
		CacheRoot:   root,
		Spec:        inv.Spec,
		LockTimeout: a.config.LockTimeout,
	})
	if err != nil {
		return err
	}
	if res.Status.Built() {
		a.logger.Info(fmt.Sprintf("environment %s was %s", res.Env.Key(), res.Status))
	} else {
		a.logger.Debug(fmt.Sprintf("environment %s is %s", res.Env.Key(), res.Status))
	}

	// 3. Activate and hand off
	environ := a.environ()
	h := domain.Handoff{
		Program: a.config.Interpreter,
		Args:    inv.ProgramArgs,
		Env:     domain.Activate(res.Env, environ).Apply(environ),
	}
	return a.executor.Handoff(ctx, h)
}

// ListOptions configures List.
type ListOptions struct {
	CacheDir string
}

// List returns every environment in the cache root, complete or not.
func (a *App) List(_ context.Context, opts ListOptions) ([]domain.Record, error) {
	root, err := a.cacheRoot(opts.CacheDir)
	if err != nil {
		return nil, err
	}
	return a.store.List(root)
}

// CleanOptions configures Clean.
type CleanOptions struct {
	CacheDir string
}

// Clean removes the environments with the given keys, or every environment when
// keys is empty. It returns the keys that were removed.
func (a *App) Clean(ctx context.Context, keys []string, opts CleanOptions) ([]string, error) {
	root, err := a.cacheRoot(opts.CacheDir)
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		records, err := a.store.List(root)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			keys = append(keys, r.Key)
		}
	}

	removed := make([]string, 0, len(keys))
	var errs []error
	for _, key := range keys {
		if err := a.cache.Remove(ctx, root, key, a.config.LockTimeout); err != nil {
			errs = append(errs, err)
			continue
		}
		removed = append(removed, key)
	}
	return removed, errors.Join(errs...)
}

// PathOptions configures Path.
type PathOptions struct {
	CacheDir string
}

// Path reports where the environment for "[interpreter] requirement..." lives
// without building it.
func (a *App) Path(_ context.Context, args []string, opts PathOptions) (domain.Record, error) {
	root, err := a.cacheRoot(opts.CacheDir)
	if err != nil {
		return domain.Record{}, err
	}
	return a.cache.Lookup(root, domain.ParseEnvSpec(args, a.pathExists))
}

func (a *App) cacheRoot(override string) (string, error) {
	root := override
	if root == "" {
		root = a.config.CacheRoot
	}
	if root == "" {
		def, err := domain.DefaultCacheRoot()
		if err != nil {
			return "", err
		}
		root = def
	}
	return domain.ResolveCacheRoot(root)
}
