package ports

import "go.trai.ch/brief/internal/core/domain"

// ProjectLoader reads a project file set from disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads every text file under root. When includes is non-empty only
	// files matching one of the glob patterns are kept.
	Load(root string, includes []string) (*domain.Project, error)
}
