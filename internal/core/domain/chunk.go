package domain

import "fmt"

// ChunkSummary counts the structural elements found inside a chunk.
type ChunkSummary struct {
	Imports     int `json:"imports"`
	Definitions int `json:"definitions"`
	Exports     int `json:"exports"`
}

// String renders the summary in the form used in context payloads.
func (s ChunkSummary) String() string {
	return fmt.Sprintf("%d imports, %d definitions, %d exports", s.Imports, s.Definitions, s.Exports)
}

// Chunk is a bounded, logically aligned slice of a file.
// StartLine and EndLine are 1-indexed and inclusive.
type Chunk struct {
	Content   string       `json:"content"`
	StartLine int          `json:"start_line"`
	EndLine   int          `json:"end_line"`
	Summary   ChunkSummary `json:"summary"`
}

// Lines returns the number of lines covered by the chunk.
func (c Chunk) Lines() int {
	if c.EndLine < c.StartLine {
		return 0
	}
	return c.EndLine - c.StartLine + 1
}
