package imports

import (
	"path"
	"regexp"
	"strings"
)

// Kind tags the import convention a rule recognises.
type Kind string

const (
	// KindESModule matches `import ... from 'x'` and `export ... from 'x'`.
	KindESModule Kind = "es-module"
	// KindSideEffect matches `import 'x'`.
	KindSideEffect Kind = "side-effect"
	// KindDynamic matches `import('x')`.
	KindDynamic Kind = "dynamic"
	// KindRequire matches `require('x')`.
	KindRequire Kind = "require"
	// KindCSSImport matches `@import 'x'` and `@import url('x')`.
	KindCSSImport Kind = "css-import"
	// KindInclude matches `#include "x"`.
	KindInclude Kind = "include"
	// KindPythonFrom matches `from x import y`.
	KindPythonFrom Kind = "python-from"
	// KindPythonImport matches `import x`.
	KindPythonImport Kind = "python-import"
)

// Rule pairs a pattern with a normaliser turning its first capture group into
// an import target.
type Rule struct {
	Kind    Kind
	Pattern *regexp.Regexp
	// Extensions restricts the rule to files with one of these extensions.
	// An empty list applies the rule to every file.
	Extensions []string
	// Normalize rewrites the captured reference. Nil keeps it unchanged.
	Normalize func(raw string) string
}

func (r Rule) applies(filePath string) bool {
	if len(r.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(path.Ext(filePath))
	for _, e := range r.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

var (
	scriptExts = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts", ".vue", ".svelte", ".astro"}
	styleExts  = []string{".css", ".scss", ".sass", ".less", ".vue", ".svelte"}
	cExts      = []string{".c", ".h", ".cc", ".cpp", ".hpp", ".m"}
	pyExts     = []string{".py", ".pyi"}
)

// DefaultRules returns the built-in rule table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Kind:       KindESModule,
			Pattern:    regexp.MustCompile(`\b(?:import|export)\s+(?:type\s+)?[^'";]*?\bfrom\s*['"]([^'"\n]+)['"]`),
			Extensions: scriptExts,
		},
		{
			Kind:       KindSideEffect,
			Pattern:    regexp.MustCompile(`(?m)(?:^|[;}])\s*import\s*['"]([^'"\n]+)['"]`),
			Extensions: scriptExts,
		},
		{
			Kind:       KindDynamic,
			Pattern:    regexp.MustCompile(`\bimport\s*\(\s*['"]([^'"\n]+)['"]\s*\)`),
			Extensions: scriptExts,
		},
		{
			Kind:       KindRequire,
			Pattern:    regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"\n]+)['"]\s*\)`),
			Extensions: scriptExts,
		},
		{
			Kind:       KindCSSImport,
			Pattern:    regexp.MustCompile(`@import\s+(?:url\(\s*)?['"]([^'"\n]+)['"]`),
			Extensions: styleExts,
			Normalize:  relativeIfFile,
		},
		{
			Kind:       KindInclude,
			Pattern:    regexp.MustCompile(`(?m)^\s*#\s*include\s+"([^"\n]+)"`),
			Extensions: cExts,
			Normalize:  relativeIfFile,
		},
		{
			Kind:       KindPythonFrom,
			Pattern:    regexp.MustCompile(`(?m)^\s*from\s+(\.+[\w.]*|[\w.]+)\s+import\b`),
			Extensions: pyExts,
			Normalize:  pythonModule,
		},
		{
			Kind:       KindPythonImport,
			Pattern:    regexp.MustCompile(`(?m)^\s*import\s+([\w.]+)`),
			Extensions: pyExts,
			Normalize:  pythonModule,
		},
	}
}

// relativeIfFile treats a bare reference with a file extension as relative to
// the importing file, which is how CSS and quoted C includes resolve.
func relativeIfFile(raw string) string {
	if isRelative(raw) || path.Ext(raw) == "" || strings.Contains(raw, "://") {
		return raw
	}
	return "./" + raw
}

// pythonModule turns dotted relative modules into paths: `.a.b` becomes
// `./a/b` and `..a` becomes `../a`. Absolute modules are left untouched.
func pythonModule(raw string) string {
	dots := len(raw) - len(strings.TrimLeft(raw, "."))
	if dots == 0 {
		return raw
	}

	rest := strings.ReplaceAll(raw[dots:], ".", "/")
	prefix := "."
	if dots > 1 {
		prefix = strings.TrimSuffix(strings.Repeat("../", dots-1), "/")
	}
	if rest == "" {
		return prefix
	}
	return prefix + "/" + rest
}

func isRelative(target string) bool {
	return target == "." || target == ".." ||
		strings.HasPrefix(target, "./") || strings.HasPrefix(target, "../")
}
