package domain

import (
	"path"
	"strings"
	"unique"
)

// pathKey indexes graph nodes. It holds one interned handle per normalized
// path, so "./src/App.tsx" and "src/App.tsx" address the same node and map
// lookups compare handles instead of strings.
type pathKey struct {
	h unique.Handle[string]
}

func keyOf(p string) pathKey {
	return pathKey{h: unique.Make(NormalizePath(p))}
}

// NormalizePath returns p slash-separated and cleaned, without a leading "./".
// The empty path stays empty.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if p == "." {
		return ""
	}
	return p
}
