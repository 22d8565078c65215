package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brief/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ProjectLoaderNodeID is the unique identifier for the project loader Graft node.
	ProjectLoaderNodeID graft.ID = "adapter.fs.project_loader"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        ProjectLoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewProjectLoader(walker), nil
		},
	})
}
