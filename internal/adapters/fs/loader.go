package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultMaxFileBytes skips files larger than this when loading a project.
	DefaultMaxFileBytes = 1 << 20

	// binarySniffLen is how much of a file is inspected for NUL bytes.
	binarySniffLen = 8000
)

// ProjectLoader implements ports.ProjectLoader over the local file system.
type ProjectLoader struct {
	walker       *Walker
	ignores      []string
	maxFileBytes int64
}

// NewProjectLoader creates a ProjectLoader using the default ignore list.
func NewProjectLoader(walker *Walker) *ProjectLoader {
	return &ProjectLoader{
		walker:       walker,
		ignores:      DefaultIgnores,
		maxFileBytes: DefaultMaxFileBytes,
	}
}

// Load reads every text file under root. Paths are relative to root and use
// forward slashes. With includes set only files matching one of the doublestar
// patterns are kept. The project id is the absolute root path.
func (l *ProjectLoader) Load(root string, includes []string) (*domain.Project, error) {
	for _, pattern := range includes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(domain.ErrInvalidIncludePattern, "pattern", pattern)
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectLoadFailed.Error()), "root", root)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectLoadFailed.Error()), "root", absRoot)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrProjectNotDirectory, "root", absRoot)
	}

	project := &domain.Project{ID: absRoot, Files: []domain.ProjectFile{}}

	for path, walkErr := range l.walker.WalkFiles(absRoot, l.ignores) {
		if walkErr != nil {
			return nil, zerr.With(zerr.Wrap(walkErr, domain.ErrProjectLoadFailed.Error()), "path", path)
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectLoadFailed.Error()), "path", path)
		}
		rel = filepath.ToSlash(rel)

		if !matchesAny(includes, rel) {
			continue
		}

		content, ok, err := l.readText(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectLoadFailed.Error()), "path", rel)
		}
		if !ok {
			continue
		}

		project.Files = append(project.Files, domain.ProjectFile{
			ID:       rel,
			Path:     rel,
			Language: domain.DetectLanguage(rel),
			Content:  content,
		})
	}

	return project, nil
}

// readText returns the file content, or false for oversized and binary files.
func (l *ProjectLoader) readText(path string) (string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false, err
	}
	if info.Size() > l.maxFileBytes {
		return "", false, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from walking the project root
	if err != nil {
		return "", false, err
	}

	sniff := data[:min(len(data), binarySniffLen)]
	if bytes.IndexByte(sniff, 0) >= 0 || !utf8.Valid(data) {
		return "", false, nil
	}

	return string(data), true, nil
}

func matchesAny(patterns []string, path string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, path) {
			return true
		}
	}
	return false
}
