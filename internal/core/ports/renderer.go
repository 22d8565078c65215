package ports

import "go.trai.ch/brief/internal/core/domain"

// Renderer defines the interface for presenting command results.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Payload writes a prepared context payload.
	Payload(p *domain.ContextPayload) error

	// Graph writes dependency graph nodes in the given order.
	Graph(nodes []domain.DependencyNode) error

	// Template writes a classification result. A nil template means no match.
	Template(t *domain.FrameworkTemplate) error
}
