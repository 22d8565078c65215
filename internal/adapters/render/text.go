// Package render presents prepared context, dependency graphs and
// classification results as styled text or JSON.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/brief/internal/core/domain"
	"go.trai.ch/brief/internal/ui/output"
	"go.trai.ch/brief/internal/ui/style"
)

// Text implements ports.Renderer for humans and for pasting into a model
// prompt. File contents are emitted verbatim inside fenced blocks.
type Text struct {
	w io.Writer

	title   lipgloss.Style
	label   lipgloss.Style
	path    lipgloss.Style
	score   lipgloss.Style
	notice  lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
}

// NewText creates a Text renderer writing to w with the environment's color profile.
// A nil writer defaults to os.Stdout.
func NewText(w io.Writer) *Text {
	return NewTextWithProfile(w, output.ColorProfile())
}

// NewTextWithProfile creates a Text renderer with a fixed color profile.
func NewTextWithProfile(w io.Writer, profile termenv.Profile) *Text {
	if w == nil {
		w = os.Stdout
	}

	r := output.Renderer(w, profile)

	return &Text{
		w:       w,
		title:   style.Title.Renderer(r),
		label:   style.Label.Renderer(r),
		path:    style.Path.Renderer(r),
		score:   style.Score.Renderer(r),
		notice:  style.Notice.Renderer(r),
		muted:   style.Muted.Renderer(r),
		heading: style.Heading.Renderer(r),
	}
}

// Payload writes the header, the continuity note, the conventions of the
// detected template and every selected file.
func (t *Text) Payload(p *domain.ContextPayload) error {
	var b strings.Builder

	mode := "incremental"
	if p.IsFullContext {
		mode = "full"
	}

	fmt.Fprintf(&b, "%s %s\n", t.title.Render("brief"), t.muted.Render(p.ProjectID))
	t.field(&b, "session", p.SessionID)
	t.field(&b, "template", p.TemplateName)
	t.field(&b, "mode", mode)
	t.field(&b, "files", fmt.Sprintf("%d", len(p.SelectedFiles)))
	t.field(&b, "tokens", fmt.Sprintf("~%d", p.TokenEstimate))

	if p.Degraded {
		fmt.Fprintf(&b, "%s\n", t.notice.Render(style.Warning+" degraded: some context collaborators failed"))
	}
	if p.ContinuityNote != "" {
		fmt.Fprintf(&b, "\n%s\n", t.notice.Render(p.ContinuityNote))
	}
	if p.Template != nil {
		b.WriteString("\n")
		t.conventions(&b, p.Template)
	}

	for i := range p.SelectedFiles {
		b.WriteString("\n")
		t.file(&b, &p.SelectedFiles[i])
	}

	if len(p.Omitted) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n",
			t.notice.Render(style.Warning+" over budget, omitted:"),
			strings.Join(p.Omitted, ", "))
	}

	return t.flush(&b)
}

// Graph writes one block per node with its edges and neighbourhood.
func (t *Text) Graph(nodes []domain.DependencyNode) error {
	var b strings.Builder

	for i := range nodes {
		node := &nodes[i]
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", t.score.Render(style.Dot), t.path.Render(node.File))
		t.list(&b, "imports", node.Imports)
		t.list(&b, "imported by", node.ImportedBy)
		t.list(&b, "related", node.Related)
	}

	if len(nodes) == 0 {
		fmt.Fprintf(&b, "%s\n", t.muted.Render("no files"))
	}

	return t.flush(&b)
}

// Template writes the classification result.
func (t *Text) Template(tmpl *domain.FrameworkTemplate) error {
	var b strings.Builder

	if tmpl == nil {
		fmt.Fprintf(&b, "%s %s\n", t.muted.Render(style.Circle), t.muted.Render("no template matched"))
		return t.flush(&b)
	}

	fmt.Fprintf(&b, "%s %s %s\n", t.score.Render(style.Check), t.title.Render(tmpl.DisplayName), t.muted.Render("("+tmpl.Name+")"))
	t.conventions(&b, tmpl)

	return t.flush(&b)
}

func (t *Text) conventions(b *strings.Builder, tmpl *domain.FrameworkTemplate) {
	fmt.Fprintf(b, "%s\n", t.heading.Render("Conventions: "+tmpl.DisplayName))
	t.list(b, "key files", tmpl.KeyFiles)
	t.list(b, "priority dirs", tmpl.PriorityDirs)
	t.bullets(b, "patterns", tmpl.Patterns)
	t.bullets(b, "practices", tmpl.Practices)
}

func (t *Text) file(b *strings.Builder, f *domain.SelectedFile) {
	meta := fmt.Sprintf("%s, ~%d tokens", f.Language, f.TokenEstimate)
	fmt.Fprintf(b, "%s %s %s\n",
		t.path.Render(f.Path),
		t.score.Render(fmt.Sprintf("[%d]", f.Score)),
		t.muted.Render(meta))
	t.list(b, "imports", f.Imports)
	t.list(b, "imported by", f.ImportedBy)
	t.list(b, "related", f.Related)

	if !f.IsChunked() {
		fence(b, f.Language, f.Content)
		return
	}

	for _, chunk := range f.Chunks {
		fmt.Fprintf(b, "%s %s\n",
			t.label.Render(fmt.Sprintf("lines %d-%d", chunk.StartLine, chunk.EndLine)),
			t.muted.Render(chunk.Summary.String()))
		fence(b, f.Language, chunk.Content)
	}
	if f.Truncated {
		fmt.Fprintf(b, "%s\n", t.notice.Render(style.Warning+" remaining chunks omitted to fit the token budget"))
	}
}

func (t *Text) field(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "  %s %s\n", t.label.Render(key+":"), value)
}

func (t *Text) list(b *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		return
	}
	t.field(b, key, strings.Join(values, ", "))
}

func (t *Text) bullets(b *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s\n", t.label.Render(key+":"))
	for _, v := range values {
		fmt.Fprintf(b, "    - %s\n", v)
	}
}

func (t *Text) flush(b *strings.Builder) error {
	_, err := io.WriteString(t.w, b.String())
	return err
}

// fence writes content as a fenced code block tagged with the language.
func fence(b *strings.Builder, language, content string) {
	if language == "text" {
		language = ""
	}
	fmt.Fprintf(b, "```%s\n", language)
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
}
