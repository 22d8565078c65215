package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brief/internal/adapters/cache"
	"go.trai.ch/brief/internal/adapters/chunker"
	"go.trai.ch/brief/internal/adapters/config"
	"go.trai.ch/brief/internal/adapters/imports"
	"go.trai.ch/brief/internal/adapters/logger"
	"go.trai.ch/brief/internal/adapters/scorer"
	"go.trai.ch/brief/internal/adapters/telemetry"
	"go.trai.ch/brief/internal/adapters/templates"
	"go.trai.ch/brief/internal/adapters/tracker"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/brief/internal/core/ports"
)

// NodeID is the unique identifier for the engine Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			tracker.NodeID,
			imports.NodeID,
			templates.NodeID,
			scorer.NodeID,
			chunker.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			config.EngineNodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			c, err := graft.Dep[ports.Cache](ctx)
			if err != nil {
				return nil, err
			}
			t, err := graft.Dep[ports.SessionTracker](ctx)
			if err != nil {
				return nil, err
			}
			g, err := graft.Dep[ports.GraphBuilder](ctx)
			if err != nil {
				return nil, err
			}
			cl, err := graft.Dep[ports.Classifier](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[ports.Scorer](ctx)
			if err != nil {
				return nil, err
			}
			ch, err := graft.Dep[ports.Chunker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tr, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.EngineConfig](ctx)
			if err != nil {
				return nil, err
			}
			return New(c, t, g, cl, s, ch, log, tr, cfg), nil
		},
	})
}
