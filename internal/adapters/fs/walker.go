// Package fs provides the file system adapters that read a project from disk.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/brief/internal/core/domain"
)

// DefaultIgnores are directory and file names never included in a project.
var DefaultIgnores = []string{
	".git",
	".jj",
	".hg",
	".svn",
	domain.BriefDirName,
	"node_modules",
	"vendor",
	"dist",
	".next",
	".nuxt",
	".svelte-kit",
	"__pycache__",
	".venv",
	"target",
	"coverage",
	".DS_Store",
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root in lexical order, skipping
// entries whose name matches one of ignores. Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(path, err) {
					return filepath.SkipAll
				}
				return nil
			}

			if path != root && isIgnored(d.Name(), ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func isIgnored(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
