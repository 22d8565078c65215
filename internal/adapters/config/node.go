package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/brief/internal/adapters/logger"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/brief/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"

	// EngineNodeID is the unique identifier for the loaded engine configuration.
	EngineNodeID graft.ID = "adapter.engine_config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[domain.EngineConfig]{
		ID:        EngineNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.EngineConfig, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.EngineConfig{}, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return domain.EngineConfig{}, zerr.Wrap(err, "failed to get current working directory")
			}
			return loader.Load(cwd)
		},
	})
}
