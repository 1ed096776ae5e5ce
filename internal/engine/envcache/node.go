package envcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/piprun/internal/adapters/cas"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/piprun/internal/adapters/config"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/piprun/internal/adapters/fs"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/piprun/internal/adapters/lock"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/piprun/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/piprun/internal/adapters/telemetry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/piprun/internal/adapters/virtualenv" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
)

const (
	// BuilderNodeID is the unique identifier for the environment builder Graft node.
	BuilderNodeID graft.ID = "engine.envcache.builder"
	// NodeID is the unique identifier for the environment cache Graft node.
	NodeID graft.ID = "engine.envcache"
)

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			virtualenv.CreatorNodeID,
			virtualenv.InstallerNodeID,
			fs.VerifierNodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			config.ConfigNodeID,
		},
		Run: runBuilderNode,
	})

	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			BuilderNodeID,
			lock.NodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			builder, err := graft.Dep[*Builder](ctx)
			if err != nil {
				return nil, err
			}

			locker, err := graft.Dep[ports.Locker](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewCache(builder, locker, store, tracer, log), nil
		},
	})
}

func runBuilderNode(ctx context.Context) (*Builder, error) {
	creator, err := graft.Dep[ports.EnvironmentCreator](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.RequirementInstaller](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return NewBuilder(creator, installer, verifier, store, tracer, cfg.Interpreter), nil
}
