package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/piprun/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/piprun/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/piprun/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/piprun/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/piprun/internal/engine/envcache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components is everything main needs to run the CLI.
type Components struct {
	App    *App
	Logger *logger.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			envcache.NodeID,
			cas.NodeID,
			shell.NodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.ConcreteNodeID,
			config.ConfigNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log.Configure(cfg)

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cache, err := graft.Dep[*envcache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return New(cache, store, executor, log, cfg), nil
}
