package virtualenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/piprun/internal/adapters/config"
	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
)

const (
	// CreatorNodeID is the unique identifier for the environment creator Graft node.
	CreatorNodeID graft.ID = "adapter.virtualenv.creator"
	// InstallerNodeID is the unique identifier for the requirement installer Graft node.
	InstallerNodeID graft.ID = "adapter.virtualenv.installer"
)

func init() {
	graft.Register(graft.Node[ports.EnvironmentCreator]{
		ID:        CreatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.EnvironmentCreator, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewCreator(cfg.CreatorCommand, cfg.CreatorArgs), nil
		},
	})

	graft.Register(graft.Node[ports.RequirementInstaller]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.RequirementInstaller, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(cfg.Installer), nil
		},
	})
}
