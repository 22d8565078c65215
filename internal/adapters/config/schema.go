package config

// Brieffile represents the structure of the brief.yaml configuration file.
// Every field is optional; unset fields keep the built-in default.
type Brieffile struct {
	Version string      `yaml:"version"`
	Cache   *CacheDTO   `yaml:"cache"`
	Tracker *TrackerDTO `yaml:"tracker"`
	Graph   *GraphDTO   `yaml:"graph"`
	Scorer  *ScorerDTO  `yaml:"scorer"`
	Chunker *ChunkerDTO `yaml:"chunker"`
	Context *ContextDTO `yaml:"context"`
}

// CacheDTO configures the expiring cache.
type CacheDTO struct {
	TTL *string `yaml:"ttl"`
}

// TrackerDTO configures the session tracker.
type TrackerDTO struct {
	SimilarityThreshold *float64 `yaml:"similarity_threshold"`
	HistoryLimit        *int     `yaml:"history_limit"`
	NoteFileLimit       *int     `yaml:"note_file_limit"`
}

// GraphDTO configures the dependency graph builder.
type GraphDTO struct {
	Depth        *int    `yaml:"depth"`
	MaxFileBytes *int    `yaml:"max_file_bytes"`
	ScanTimeout  *string `yaml:"scan_timeout"`
}

// ScorerDTO configures the relevance scorer.
type ScorerDTO struct {
	TopK             *int        `yaml:"top_k"`
	Weights          *WeightsDTO `yaml:"weights"`
	MinContentLength *int        `yaml:"min_content_length"`
	MaxContentLength *int        `yaml:"max_content_length"`
}

// WeightsDTO holds the additive scorer weights.
type WeightsDTO struct {
	PathToken       *int `yaml:"path_token"`
	ContentToken    *int `yaml:"content_token"`
	ContentTokenCap *int `yaml:"content_token_cap"`
	Keyword         *int `yaml:"keyword"`
	IntentRole      *int `yaml:"intent_role"`
	Bootstrap       *int `yaml:"bootstrap"`
	SizePenalty     *int `yaml:"size_penalty"`
}

// ChunkerDTO configures the large-file chunker.
type ChunkerDTO struct {
	LineThreshold *int `yaml:"line_threshold"`
	MaxChunkLines *int `yaml:"max_chunk_lines"`
	MinChunkLines *int `yaml:"min_chunk_lines"`
}

// ContextDTO configures payload assembly.
type ContextDTO struct {
	TokenBudget        *int  `yaml:"token_budget"`
	FingerprintContent *bool `yaml:"fingerprint_content"`
}
