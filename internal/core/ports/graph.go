package ports

import (
	"context"

	"go.trai.ch/brief/internal/core/domain"
)

// GraphBuilder builds the import graph of a file set.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type GraphBuilder interface {
	// Build parses and resolves imports across files. When ctx is done the
	// graph built so far is returned together with the context error.
	Build(ctx context.Context, files []domain.ProjectFile) (*domain.DependencyGraph, error)
}
