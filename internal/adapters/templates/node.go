package templates

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brief/internal/core/ports"
)

// NodeID is the unique identifier for the template classifier Graft node.
const NodeID graft.ID = "adapter.templates"

func init() {
	graft.Register(graft.Node[ports.Classifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Classifier, error) {
			templates, err := ParseCatalog(defaultCatalog, DefaultRegistry())
			if err != nil {
				return nil, err
			}
			return New(templates, DefaultRegistry()), nil
		},
	})
}
