package ports

import "go.trai.ch/brief/internal/core/domain"

// Classifier matches a file set against the template catalog.
//
//go:generate go run go.uber.org/mock/mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks
type Classifier interface {
	// Classify returns the first matching template, or nil when none matches.
	Classify(files []domain.ProjectFile) (*domain.FrameworkTemplate, error)
}
