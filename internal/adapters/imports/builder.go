// Package imports builds the dependency graph of a project from heuristic
// import parsing.
package imports

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/brief/internal/core/domain"
)

// DefaultMaxFileBytes is the largest file content scanned for imports.
const DefaultMaxFileBytes = 1 << 20

// Builder implements ports.GraphBuilder.
type Builder struct {
	mu           sync.RWMutex
	rules        []Rule
	extensions   []string
	depth        int
	maxFileBytes int
}

// New creates a Builder with the default rule table.
func New(cfg domain.GraphConfig) *Builder {
	b := &Builder{
		rules:        DefaultRules(),
		extensions:   DefaultExtensions,
		depth:        cfg.Depth,
		maxFileBytes: cfg.MaxFileBytes,
	}
	if b.maxFileBytes <= 0 {
		b.maxFileBytes = DefaultMaxFileBytes
	}
	return b
}

// Register appends a rule to the table.
func (b *Builder) Register(rule Rule) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rules = append(b.rules, rule)
}

// Build parses every file, resolves relative imports to project files and
// computes the related neighbourhood of each node.
// If ctx is done mid-scan the graph of the files scanned so far is returned
// with the context error.
func (b *Builder) Build(ctx context.Context, files []domain.ProjectFile) (*domain.DependencyGraph, error) {
	g := domain.NewDependencyGraph()
	for i := range files {
		g.AddFile(files[i].Path)
	}

	idx := newPathIndex(domain.FilePaths(files), b.extensions)

	var scanErr error
	for i := range files {
		if err := ctx.Err(); err != nil {
			scanErr = err
			break
		}

		file := &files[i]
		if len(file.Content) > b.maxFileBytes {
			continue
		}
		for _, target := range b.Extract(*file) {
			if !isRelative(target) {
				continue
			}
			resolved, ok := idx.resolve(file.Path, target)
			if !ok || resolved == file.Path {
				continue
			}
			g.AddEdge(file.Path, resolved)
		}
	}

	g.LinkReverse()
	g.ComputeRelated(b.depth)

	return g, scanErr
}

type match struct {
	pos    int
	target string
}

// Extract returns the raw import targets of file, deduplicated, in order of
// first occurrence.
func (b *Builder) Extract(file domain.ProjectFile) []string {
	b.mu.RLock()
	rules := b.rules
	b.mu.RUnlock()

	var matches []match
	for _, rule := range rules {
		if !rule.applies(file.Path) {
			continue
		}
		for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(file.Content, -1) {
			if len(loc) < 4 || loc[2] < 0 {
				continue
			}
			target := file.Content[loc[2]:loc[3]]
			if rule.Normalize != nil {
				target = rule.Normalize(target)
			}
			if target == "" {
				continue
			}
			matches = append(matches, match{pos: loc[2], target: target})
		}
	}

	slices.SortStableFunc(matches, func(a, b match) int {
		return a.pos - b.pos
	})

	seen := make(map[string]struct{}, len(matches))
	targets := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, dup := seen[m.target]; dup {
			continue
		}
		seen[m.target] = struct{}{}
		targets = append(targets, m.target)
	}
	return targets
}
