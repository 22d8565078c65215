package domain

// RelevanceScore is the heuristic usefulness of a file for a task.
type RelevanceScore struct {
	File  ProjectFile `json:"-"`
	Path  string      `json:"path"`
	Score int         `json:"score"`
}
