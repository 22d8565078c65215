// Package chunker splits large files into line ranges aligned with top-level
// definitions.
package chunker

import (
	"regexp"
	"strings"

	"go.trai.ch/brief/internal/core/domain"
)

var (
	definitionPattern = regexp.MustCompile(
		`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?(?:(?:public|private|protected|static|abstract|pub)\s+)*` +
			`(?:class|function|def|interface|type|struct|enum|func|fn|impl|trait|module)\s`)
	exportedBindingPattern = regexp.MustCompile(`^\s*export\s+(?:const|let|var)\s+[A-Za-z_$]`)
	importPattern          = regexp.MustCompile(
		`^\s*(?:import\b|from\s+\S+\s+import\b|#include\b|use\s+\S|.*\brequire\s*\()`)
	exportPattern = regexp.MustCompile(`^\s*(?:export\b|module\.exports\b|exports\.[A-Za-z_$])`)
)

// Chunker implements ports.Chunker.
type Chunker struct {
	threshold int
	maxLines  int
	minLines  int
}

// New creates a Chunker from the chunker configuration.
func New(cfg domain.ChunkerConfig) *Chunker {
	return &Chunker{
		threshold: cfg.LineThreshold,
		maxLines:  cfg.MaxChunkLines,
		minLines:  cfg.MinChunkLines,
	}
}

// NeedsChunking reports whether the file has more lines than the threshold.
func (c *Chunker) NeedsChunking(file domain.ProjectFile) bool {
	return file.LineCount() > c.threshold
}

// Chunk splits the file into contiguous chunks covering every line.
// Files at or under the threshold yield a single chunk. Empty content has no
// lines to cover and yields no chunks.
func (c *Chunker) Chunk(file domain.ProjectFile) []domain.Chunk {
	lines := domain.SplitLines(file.Content)
	if len(lines) == 0 {
		return []domain.Chunk{}
	}
	if len(lines) <= c.threshold {
		return []domain.Chunk{newChunk(lines, 0, len(lines))}
	}

	var (
		chunks  []domain.Chunk
		start   int
		balance int
		inDef   bool
		opened  bool
	)

	for i, line := range lines {
		if !inDef && isDefinition(line) {
			inDef = true
			opened = false
		}

		balance += strings.Count(line, "{") - strings.Count(line, "}")
		if balance > 0 {
			opened = true
		}
		if balance < 0 {
			balance, inDef, opened = 0, false, false
		}

		size := i - start + 1
		switch {
		case size >= c.maxLines:
			chunks = append(chunks, newChunk(lines, start, i+1))
			start = i + 1
		case inDef && opened && balance == 0:
			if size >= c.minLines {
				chunks = append(chunks, newChunk(lines, start, i+1))
				start = i + 1
			}
			inDef, opened = false, false
		}
	}

	if start < len(lines) {
		chunks = append(chunks, newChunk(lines, start, len(lines)))
	}
	return chunks
}

// newChunk builds the chunk for lines[from:to].
func newChunk(lines []string, from, to int) domain.Chunk {
	part := lines[from:to]
	return domain.Chunk{
		Content:   strings.Join(part, "\n"),
		StartLine: from + 1,
		EndLine:   to,
		Summary:   Summarize(part),
	}
}

// Summarize counts imports, definitions and exports in lines.
func Summarize(lines []string) domain.ChunkSummary {
	var s domain.ChunkSummary
	for _, line := range lines {
		if importPattern.MatchString(line) {
			s.Imports++
		}
		if isDefinition(line) {
			s.Definitions++
		}
		if exportPattern.MatchString(line) {
			s.Exports++
		}
	}
	return s
}

func isDefinition(line string) bool {
	return definitionPattern.MatchString(line) || exportedBindingPattern.MatchString(line)
}
