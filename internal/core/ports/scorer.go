package ports

import "go.trai.ch/brief/internal/core/domain"

// Scorer ranks files by their relevance to a task.
//
//go:generate go run go.uber.org/mock/mockgen -source=scorer.go -destination=mocks/mock_scorer.go -package=mocks
type Scorer interface {
	// Rank returns at most k files ordered by descending score.
	Rank(task string, files []domain.ProjectFile, k int) ([]domain.RelevanceScore, error)
}
