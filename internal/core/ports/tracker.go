package ports

import "go.trai.ch/brief/internal/core/domain"

// SessionTracker remembers what each project conversation has already seen.
//
//go:generate go run go.uber.org/mock/mockgen -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks
type SessionTracker interface {
	// Track decides between full and incremental context for one turn and
	// records the task and the returned files.
	Track(projectID string, files []domain.ProjectFile, task string, forceFull bool) domain.TrackDecision

	// Reset forgets the project's session.
	Reset(projectID string)

	// Snapshot returns a copy of the project's session state.
	Snapshot(projectID string) (*domain.SessionState, bool)

	// Restore replaces the project's session state.
	Restore(state *domain.SessionState)
}
