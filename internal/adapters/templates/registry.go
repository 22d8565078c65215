package templates

import (
	"maps"
	"slices"
)

// Predicate evaluates one detector condition. It holds when any of args holds.
type Predicate func(fs *FileSet, args []string) bool

// Registry maps predicate names used in catalogs to their implementation.
type Registry struct {
	predicates map[string]Predicate
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{predicates: make(map[string]Predicate)}
}

// DefaultRegistry returns a registry with the built-in predicates.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("has_file", anyArg((*FileSet).HasFile))
	r.Register("has_dir", anyArg((*FileSet).HasDir))
	r.Register("has_extension", anyArg((*FileSet).HasExtension))
	r.Register("content_contains", anyArg((*FileSet).ContentContains))
	r.Register("dependency", anyArg((*FileSet).HasDependency))
	return r
}

// Register adds or replaces a named predicate.
func (r *Registry) Register(name string, p Predicate) {
	r.predicates[name] = p
}

// Lookup returns the predicate registered under name.
func (r *Registry) Lookup(name string) (Predicate, bool) {
	p, ok := r.predicates[name]
	return p, ok
}

// Names returns the registered predicate names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.predicates))
}

func anyArg(check func(*FileSet, string) bool) Predicate {
	return func(fs *FileSet, args []string) bool {
		for _, arg := range args {
			if check(fs, arg) {
				return true
			}
		}
		return false
	}
}
