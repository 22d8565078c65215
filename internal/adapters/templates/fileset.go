package templates

import (
	"path"
	"strings"
	"sync"

	"go.trai.ch/brief/internal/core/domain"
)

// FileSet is the read-only view of a project that predicates evaluate against.
type FileSet struct {
	files      []domain.ProjectFile
	paths      map[string]struct{}
	basenames  map[string]struct{}
	dirs       map[string]struct{}
	extensions map[string]struct{}

	depsOnce sync.Once
	deps     map[string]struct{}
}

// NewFileSet indexes files for predicate evaluation.
func NewFileSet(files []domain.ProjectFile) *FileSet {
	fs := &FileSet{
		files:      files,
		paths:      make(map[string]struct{}, len(files)),
		basenames:  make(map[string]struct{}, len(files)),
		dirs:       make(map[string]struct{}),
		extensions: make(map[string]struct{}),
	}
	for i := range files {
		p := files[i].Path
		fs.paths[p] = struct{}{}
		fs.basenames[path.Base(p)] = struct{}{}
		if ext := strings.ToLower(path.Ext(p)); ext != "" {
			fs.extensions[ext] = struct{}{}
		}
		for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
			fs.dirs[dir] = struct{}{}
		}
	}
	return fs
}

// HasFile reports whether name is the path or the basename of a file.
func (fs *FileSet) HasFile(name string) bool {
	if _, ok := fs.paths[name]; ok {
		return true
	}
	if strings.Contains(name, "/") {
		return false
	}
	_, ok := fs.basenames[name]
	return ok
}

// HasDir reports whether some file lives below a directory named dir.
// dir may span several segments ("src/app").
func (fs *FileSet) HasDir(dir string) bool {
	dir = strings.Trim(dir, "/")
	if _, ok := fs.dirs[dir]; ok {
		return true
	}
	for d := range fs.dirs {
		if strings.HasSuffix(d, "/"+dir) {
			return true
		}
	}
	return false
}

// HasExtension reports whether some file has the extension ext.
func (fs *FileSet) HasExtension(ext string) bool {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	_, ok := fs.extensions[strings.ToLower(ext)]
	return ok
}

// ContentContains reports whether some file content contains needle.
func (fs *FileSet) ContentContains(needle string) bool {
	for i := range fs.files {
		if strings.Contains(fs.files[i].Content, needle) {
			return true
		}
	}
	return false
}

// HasDependency reports whether a manifest of the project declares name.
func (fs *FileSet) HasDependency(name string) bool {
	fs.depsOnce.Do(func() {
		fs.deps = declaredDependencies(fs.files)
	})
	_, ok := fs.deps[normalizeDependency(name)]
	return ok
}
