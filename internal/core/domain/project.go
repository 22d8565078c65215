// Package domain contains the core domain models of the context preparation engine.
package domain

import (
	"path"
	"strings"
)

// ProjectFile is a single file of a project as supplied by the caller.
// The engine treats it as immutable for the duration of a call.
type ProjectFile struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Language string `json:"language,omitempty"`
	Content  string `json:"content,omitempty"`
}

// Project is the in-memory file set the engine prepares context from.
type Project struct {
	ID    string        `json:"id"`
	Files []ProjectFile `json:"files"`
}

// Paths returns the file paths of the project in their original order.
func (p *Project) Paths() []string {
	return FilePaths(p.Files)
}

// FilePaths returns the paths of files in their original order.
func FilePaths(files []ProjectFile) []string {
	paths := make([]string, len(files))
	for i := range files {
		paths[i] = files[i].Path
	}
	return paths
}

// Basename returns the final element of the file path.
func (f *ProjectFile) Basename() string {
	return path.Base(f.Path)
}

// LineCount returns the number of lines in the content.
// A trailing newline does not start a new line.
func (f *ProjectFile) LineCount() int {
	return len(SplitLines(f.Content))
}

// SplitLines splits content into lines, dropping the empty element produced by a
// trailing newline.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

var extensionLanguages = map[string]string{
	".ts":     "typescript",
	".tsx":    "typescript",
	".js":     "javascript",
	".jsx":    "javascript",
	".mjs":    "javascript",
	".cjs":    "javascript",
	".vue":    "vue",
	".svelte": "svelte",
	".py":     "python",
	".go":     "go",
	".rs":     "rust",
	".java":   "java",
	".kt":     "kotlin",
	".rb":     "ruby",
	".php":    "php",
	".c":      "c",
	".h":      "c",
	".cpp":    "cpp",
	".hpp":    "cpp",
	".cs":     "csharp",
	".css":    "css",
	".scss":   "scss",
	".sass":   "sass",
	".less":   "less",
	".html":   "html",
	".json":   "json",
	".yaml":   "yaml",
	".yml":    "yaml",
	".toml":   "toml",
	".md":     "markdown",
	".sql":    "sql",
	".sh":     "shell",
}

// DetectLanguage guesses a language identifier from the file extension.
// It returns "text" for unknown extensions.
func DetectLanguage(p string) string {
	if lang, ok := extensionLanguages[strings.ToLower(path.Ext(p))]; ok {
		return lang
	}
	return "text"
}
