package ports

import "go.trai.ch/brief/internal/core/domain"

// SessionStore defines the interface for persisting tracker sessions.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SessionStore interface {
	// Get retrieves the session of a project stored under root.
	// Returns nil, nil if not found.
	Get(root, projectID string) (*domain.SessionState, error)

	// Put stores the session.
	Put(root string, state *domain.SessionState) error

	// Delete removes the session of a project. Deleting a missing session is not an error.
	Delete(root, projectID string) error
}
