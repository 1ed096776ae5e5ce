// Package envcache builds environments and caches them by key.
package envcache

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/piprun/internal/build"
	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder creates an environment, installs its requirements and records it as complete.
type Builder struct {
	creator     ports.EnvironmentCreator
	installer   ports.RequirementInstaller
	verifier    ports.Verifier
	store       ports.ManifestStore
	tracer      ports.Tracer
	interpreter string
	now         func() time.Time
}

// NewBuilder creates a new Builder. interpreter is the executable name every
// environment must provide in its bin directory.
func NewBuilder(
	creator ports.EnvironmentCreator,
	installer ports.RequirementInstaller,
	verifier ports.Verifier,
	store ports.ManifestStore,
	tracer ports.Tracer,
	interpreter string,
) *Builder {
	return &Builder{
		creator:     creator,
		installer:   installer,
		verifier:    verifier,
		store:       store,
		tracer:      tracer,
		interpreter: interpreter,
		now:         time.Now,
	}
}

// Build materializes env. The caller must hold the environment lock and the
// root must not exist. Nothing is retried and a failed build is left on disk;
// without a manifest it is never mistaken for a complete one.
func (b *Builder) Build(ctx context.Context, env domain.Environment) error {
	spec := env.Spec()

	err := b.step(ctx, "create environment", env, func(ctx context.Context) error {
		return b.creator.Create(ctx, env.Root(), spec.Interpreter)
	})
	if err != nil {
		return err
	}

	// The installer rejects an empty requirement list.
	if len(spec.Requirements) > 0 {
		err = b.step(ctx, "install requirements", env, func(ctx context.Context) error {
			return b.installer.Install(ctx, env.BinDir(), spec.Requirements)
		})
		if err != nil {
			return err
		}
	}

	err = b.step(ctx, "verify environment", env, func(context.Context) error {
		return b.verify(env)
	})
	if err != nil {
		return err
	}

	return b.store.Put(env.Root(), domain.Manifest{
		Key:          env.Key(),
		Interpreter:  spec.Interpreter,
		Requirements: spec.Requirements,
		CreatedAt:    b.now().UTC(),
		Version:      build.Version,
	})
}

func (b *Builder) verify(env domain.Environment) error {
	missing, err := b.verifier.MissingExecutables(env.BinDir(), []string{b.interpreter, b.installer.Name()})
	if err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}
	if len(missing) > 0 {
		incomplete := zerr.With(zerr.New("environment is missing executables"), "missing", missing)
		return errors.Join(domain.ErrBuildFailed, zerr.With(incomplete, "bin", env.BinDir()))
	}
	return nil
}

func (b *Builder) step(ctx context.Context, name string, env domain.Environment, fn func(context.Context) error) error {
	ctx, span := b.tracer.Start(ctx, name)
	defer span.End()
	span.SetAttribute("env.key", env.Key())

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
