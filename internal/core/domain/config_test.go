package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 0.7, cfg.Tracker.SimilarityThreshold, 1e-9)
	assert.Equal(t, 5, cfg.Tracker.HistoryLimit)
	assert.Equal(t, 2, cfg.Graph.Depth)
	assert.Equal(t, 10, cfg.Scorer.TopK)
	assert.Equal(t, 500, cfg.Chunker.LineThreshold)
	assert.True(t, cfg.Context.FingerprintContent)
}

func TestEngineConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.EngineConfig)
		field  string
	}{
		{name: "ttl", mutate: func(c *domain.EngineConfig) { c.Cache.TTL = 0 }, field: "cache.ttl"},
		{name: "threshold", mutate: func(c *domain.EngineConfig) { c.Tracker.SimilarityThreshold = 1.5 }, field: "tracker.similarity_threshold"},
		{name: "history", mutate: func(c *domain.EngineConfig) { c.Tracker.HistoryLimit = 0 }, field: "tracker.history_limit"},
		{name: "depth", mutate: func(c *domain.EngineConfig) { c.Graph.Depth = -1 }, field: "graph.depth"},
		{name: "top k", mutate: func(c *domain.EngineConfig) { c.Scorer.TopK = 0 }, field: "scorer.top_k"},
		{name: "min chunk", mutate: func(c *domain.EngineConfig) { c.Chunker.MinChunkLines = 500 }, field: "chunker.min_chunk_lines"},
		{name: "budget", mutate: func(c *domain.EngineConfig) { c.Context.TokenBudget = -1 }, field: "context.token_budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidConfig.Error())

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Contains(t, zErr.Metadata(), tt.field)
		})
	}
}
