package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brief/internal/adapters/config"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/brief/internal/core/ports"
)

// NodeID is the unique identifier for the cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.EngineNodeID},
		Run: func(ctx context.Context) (ports.Cache, error) {
			cfg, err := graft.Dep[domain.EngineConfig](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Cache.TTL), nil
		},
	})
}
