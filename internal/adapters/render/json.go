package render

import (
	"encoding/json"
	"io"
	"os"

	"go.trai.ch/brief/internal/core/domain"
)

// JSON implements ports.Renderer with indented JSON documents, one per call.
type JSON struct {
	w io.Writer
}

// NewJSON creates a JSON renderer writing to w. A nil writer defaults to os.Stdout.
func NewJSON(w io.Writer) *JSON {
	if w == nil {
		w = os.Stdout
	}
	return &JSON{w: w}
}

type graphDocument struct {
	Nodes []domain.DependencyNode `json:"nodes"`
}

type templateDocument struct {
	TemplateName string                    `json:"template_name"`
	Template     *domain.FrameworkTemplate `json:"template"`
}

// Payload writes the payload as is.
func (j *JSON) Payload(p *domain.ContextPayload) error {
	return j.encode(p)
}

// Graph writes {"nodes": [...]}.
func (j *JSON) Graph(nodes []domain.DependencyNode) error {
	if nodes == nil {
		nodes = []domain.DependencyNode{}
	}
	return j.encode(graphDocument{Nodes: nodes})
}

// Template writes the template name together with the template, null when
// nothing matched.
func (j *JSON) Template(t *domain.FrameworkTemplate) error {
	return j.encode(templateDocument{TemplateName: domain.TemplateName(t), Template: t})
}

func (j *JSON) encode(v any) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
