package domain

// SelectedFile is a file chosen for the model, whole or as chunks.
type SelectedFile struct {
	Path          string   `json:"path"`
	Language      string   `json:"language"`
	Score         int      `json:"score"`
	Content       string   `json:"content,omitempty"`
	Chunks        []Chunk  `json:"chunks,omitempty"`
	Imports       []string `json:"imports,omitempty"`
	ImportedBy    []string `json:"imported_by,omitempty"`
	Related       []string `json:"related,omitempty"`
	TokenEstimate int      `json:"token_estimate"`
	Truncated     bool     `json:"truncated,omitempty"`
}

// IsChunked reports whether the file is carried as chunks.
func (f *SelectedFile) IsChunked() bool {
	return len(f.Chunks) > 0
}

// ContextPayload is the structured context produced for one turn.
type ContextPayload struct {
	ProjectID      string             `json:"project_id"`
	SessionID      string             `json:"session_id"`
	SelectedFiles  []SelectedFile     `json:"selected_files"`
	TemplateName   string             `json:"template_name"`
	Template       *FrameworkTemplate `json:"template,omitempty"`
	ContinuityNote string             `json:"continuity_note,omitempty"`
	IsFullContext  bool               `json:"is_full_context"`
	Degraded       bool               `json:"degraded,omitempty"`
	TokenEstimate  int                `json:"token_estimate"`
	Omitted        []string           `json:"omitted,omitempty"`
	Fingerprint    string             `json:"fingerprint"`
}

// Paths returns the paths of the selected files in payload order.
func (p *ContextPayload) Paths() []string {
	paths := make([]string, len(p.SelectedFiles))
	for i := range p.SelectedFiles {
		paths[i] = p.SelectedFiles[i].Path
	}
	return paths
}

// EstimateTokens approximates the model token count of text as one token per
// four bytes, rounded up.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
