package ports

import "go.trai.ch/brief/internal/core/domain"

// Chunker splits oversized files into bounded segments.
//
//go:generate go run go.uber.org/mock/mockgen -source=chunker.go -destination=mocks/mock_chunker.go -package=mocks
type Chunker interface {
	// NeedsChunking reports whether file exceeds the line threshold.
	NeedsChunking(file domain.ProjectFile) bool

	// Chunk splits file. Files at or under the threshold yield one chunk and
	// empty files yield none.
	Chunk(file domain.ProjectFile) []domain.Chunk
}
