package imports

import (
	"path"
	"strings"
)

// DefaultExtensions are the suffixes probed when resolving a relative target.
var DefaultExtensions = []string{
	"", ".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs", ".vue", ".svelte",
	".py", ".css", ".scss", ".json", ".h", ".hpp",
}

var indexNames = []string{"index", "__init__"}

// pathIndex answers direct and suffix lookups over a file set. For every
// suffix the first file in input order wins.
type pathIndex struct {
	exact  map[string]struct{}
	suffix map[string]string
	exts   []string
}

func newPathIndex(paths []string, exts []string) *pathIndex {
	idx := &pathIndex{
		exact:  make(map[string]struct{}, len(paths)),
		suffix: make(map[string]string, len(paths)*2),
		exts:   exts,
	}
	for _, p := range paths {
		idx.exact[p] = struct{}{}
		for i := 0; i < len(p); i++ {
			if i > 0 && p[i-1] != '/' {
				continue
			}
			if _, taken := idx.suffix[p[i:]]; !taken {
				idx.suffix[p[i:]] = p
			}
		}
	}
	return idx
}

// resolve finds the project file a relative target of importer refers to.
// Bases are the target joined to the importer's directory, then the target
// with its leading ./ and ../ segments removed. Each base is probed as a direct
// match, a suffix match and an index file, across all extensions.
func (idx *pathIndex) resolve(importer, target string) (string, bool) {
	for _, base := range candidateBases(importer, target) {
		if base == "" || base == "." {
			continue
		}
		if p, ok := idx.probe(base); ok {
			return p, true
		}
	}
	return "", false
}

func (idx *pathIndex) probe(base string) (string, bool) {
	for _, ext := range idx.exts {
		if _, ok := idx.exact[base+ext]; ok {
			return base + ext, true
		}
	}
	for _, ext := range idx.exts {
		if p, ok := idx.suffix[base+ext]; ok {
			return p, true
		}
	}
	for _, name := range indexNames {
		for _, ext := range idx.exts {
			if ext == "" {
				continue
			}
			if candidate := base + "/" + name + ext; idx.has(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

func (idx *pathIndex) has(p string) bool {
	_, ok := idx.exact[p]
	return ok
}

func candidateBases(importer, target string) []string {
	joined := path.Join(path.Dir(importer), target)
	stripped := stripRelative(target)
	if stripped == joined {
		return []string{joined}
	}
	return []string{joined, stripped}
}

func stripRelative(target string) string {
	for {
		switch {
		case strings.HasPrefix(target, "./"):
			target = target[2:]
		case strings.HasPrefix(target, "../"):
			target = target[3:]
		case target == "." || target == "..":
			return ""
		default:
			return target
		}
	}
}
