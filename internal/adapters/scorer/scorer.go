// Package scorer ranks project files against a free-text task with additive
// filename, content and role heuristics.
package scorer

import (
	"path"
	"slices"
	"strings"

	"go.trai.ch/brief/internal/core/domain"
)

// Scorer implements ports.Scorer.
type Scorer struct {
	weights domain.ScoreWeights
	topK    int
	minLen  int
	maxLen  int
}

// New creates a Scorer from the scorer configuration.
func New(cfg domain.ScorerConfig) *Scorer {
	return &Scorer{
		weights: cfg.Weights,
		topK:    cfg.TopK,
		minLen:  cfg.MinContentLength,
		maxLen:  cfg.MaxContentLength,
	}
}

// Rank scores every file and returns the best k in descending order.
// Equal scores keep their input order. A non-positive k selects the configured default.
func (s *Scorer) Rank(task string, files []domain.ProjectFile, k int) ([]domain.RelevanceScore, error) {
	if k <= 0 {
		k = s.topK
	}

	p := newProfile(task)
	scores := make([]domain.RelevanceScore, len(files))
	for i := range files {
		scores[i] = domain.RelevanceScore{
			File:  files[i],
			Path:  files[i].Path,
			Score: s.score(&p, &files[i]),
		}
	}

	slices.SortStableFunc(scores, func(a, b domain.RelevanceScore) int {
		return b.Score - a.Score
	})

	if len(scores) > k {
		scores = scores[:k]
	}
	return scores, nil
}

// Score returns the relevance of a single file for task.
func (s *Scorer) Score(task string, file domain.ProjectFile) int {
	p := newProfile(task)
	return s.score(&p, &file)
}

func (s *Scorer) score(p *profile, file *domain.ProjectFile) int {
	w := s.weights
	lowerPath := strings.ToLower(file.Path)
	lowerContent := strings.ToLower(file.Content)

	total := 0

	for _, tok := range p.pathTokens {
		if strings.Contains(lowerPath, tok) {
			total += w.PathToken
		}
	}

	content := 0
	for _, tok := range p.contentTokens {
		if strings.Contains(lowerContent, tok) {
			content += w.ContentToken
		}
	}
	total += min(content, w.ContentTokenCap)

	for _, kw := range p.keywords {
		if strings.Contains(lowerContent, kw) {
			total += w.Keyword
		}
	}

	if len(p.intents) > 0 {
		roles := detectRoles(lowerPath, lowerContent)
		for _, intent := range intentOrder {
			if p.intents[intent] && roles[intent] {
				total += w.IntentRole
			}
		}
	}

	if isBootstrap(path.Base(lowerPath)) {
		total += w.Bootstrap
	}

	if n := len(file.Content); n < s.minLen || n > s.maxLen {
		total -= w.SizePenalty
	}

	return total
}
