package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// EngineConfig holds every tunable of the context engine.
type EngineConfig struct {
	Cache   CacheConfig
	Tracker TrackerConfig
	Graph   GraphConfig
	Scorer  ScorerConfig
	Chunker ChunkerConfig
	Context ContextConfig
}

// CacheConfig configures the expiring cache.
type CacheConfig struct {
	TTL time.Duration
}

// TrackerConfig configures the session tracker.
type TrackerConfig struct {
	// SimilarityThreshold is the Jaccard similarity below which a task counts as changed.
	SimilarityThreshold float64
	HistoryLimit        int
	NoteFileLimit       int
}

// GraphConfig configures the dependency graph builder.
type GraphConfig struct {
	Depth        int
	MaxFileBytes int
	ScanTimeout  time.Duration
}

// ScoreWeights are the additive weights of the relevance scorer.
type ScoreWeights struct {
	PathToken       int
	ContentToken    int
	ContentTokenCap int
	Keyword         int
	IntentRole      int
	Bootstrap       int
	SizePenalty     int
}

// ScorerConfig configures the relevance scorer.
type ScorerConfig struct {
	TopK             int
	Weights          ScoreWeights
	MinContentLength int
	MaxContentLength int
}

// ChunkerConfig configures the large-file chunker.
type ChunkerConfig struct {
	LineThreshold int
	MaxChunkLines int
	MinChunkLines int
}

// ContextConfig configures payload assembly.
type ContextConfig struct {
	// TokenBudget caps the payload size; zero means unlimited.
	TokenBudget        int
	FingerprintContent bool
}

// DefaultConfig returns the built-in engine configuration.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Cache: CacheConfig{TTL: 5 * time.Minute},
		Tracker: TrackerConfig{
			SimilarityThreshold: 0.7,
			HistoryLimit:        5,
			NoteFileLimit:       10,
		},
		Graph: GraphConfig{
			Depth:        DefaultGraphDepth,
			MaxFileBytes: 1 << 20,
			ScanTimeout:  2 * time.Second,
		},
		Scorer: ScorerConfig{
			TopK: 10,
			Weights: ScoreWeights{
				PathToken:       50,
				ContentToken:    5,
				ContentTokenCap: 50,
				Keyword:         20,
				IntentRole:      30,
				Bootstrap:       20,
				SizePenalty:     10,
			},
			MinContentLength: 100,
			MaxContentLength: 50000,
		},
		Chunker: ChunkerConfig{
			LineThreshold: 500,
			MaxChunkLines: 200,
			MinChunkLines: 50,
		},
		Context: ContextConfig{
			TokenBudget:        0,
			FingerprintContent: true,
		},
	}
}

// Validate checks that every value is within its usable range.
func (c *EngineConfig) Validate() error {
	switch {
	case c.Cache.TTL <= 0:
		return zerr.With(ErrInvalidConfig, "cache.ttl", c.Cache.TTL.String())
	case c.Tracker.SimilarityThreshold < 0 || c.Tracker.SimilarityThreshold > 1:
		return zerr.With(ErrInvalidConfig, "tracker.similarity_threshold", c.Tracker.SimilarityThreshold)
	case c.Tracker.HistoryLimit < 1:
		return zerr.With(ErrInvalidConfig, "tracker.history_limit", c.Tracker.HistoryLimit)
	case c.Tracker.NoteFileLimit < 0:
		return zerr.With(ErrInvalidConfig, "tracker.note_file_limit", c.Tracker.NoteFileLimit)
	case c.Graph.Depth < 0:
		return zerr.With(ErrInvalidConfig, "graph.depth", c.Graph.Depth)
	case c.Graph.MaxFileBytes <= 0:
		return zerr.With(ErrInvalidConfig, "graph.max_file_bytes", c.Graph.MaxFileBytes)
	case c.Graph.ScanTimeout <= 0:
		return zerr.With(ErrInvalidConfig, "graph.scan_timeout", c.Graph.ScanTimeout.String())
	case c.Scorer.TopK < 1:
		return zerr.With(ErrInvalidConfig, "scorer.top_k", c.Scorer.TopK)
	case c.Scorer.MinContentLength > c.Scorer.MaxContentLength:
		return zerr.With(ErrInvalidConfig, "scorer.min_content_length", c.Scorer.MinContentLength)
	case c.Chunker.MaxChunkLines < 1:
		return zerr.With(ErrInvalidConfig, "chunker.max_chunk_lines", c.Chunker.MaxChunkLines)
	case c.Chunker.MinChunkLines < 0 || c.Chunker.MinChunkLines > c.Chunker.MaxChunkLines:
		return zerr.With(ErrInvalidConfig, "chunker.min_chunk_lines", c.Chunker.MinChunkLines)
	case c.Chunker.LineThreshold < 1:
		return zerr.With(ErrInvalidConfig, "chunker.line_threshold", c.Chunker.LineThreshold)
	case c.Context.TokenBudget < 0:
		return zerr.With(ErrInvalidConfig, "context.token_budget", c.Context.TokenBudget)
	}
	return nil
}
