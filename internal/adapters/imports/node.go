package imports

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brief/internal/adapters/config"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/brief/internal/core/ports"
)

// NodeID is the unique identifier for the graph builder Graft node.
const NodeID graft.ID = "adapter.imports"

func init() {
	graft.Register(graft.Node[ports.GraphBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.EngineNodeID},
		Run: func(ctx context.Context) (ports.GraphBuilder, error) {
			cfg, err := graft.Dep[domain.EngineConfig](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Graph), nil
		},
	})
}
