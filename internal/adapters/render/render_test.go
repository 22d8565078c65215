package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brief/internal/adapters/render"
	"go.trai.ch/brief/internal/core/domain"
)

func reactTemplate() *domain.FrameworkTemplate {
	return &domain.FrameworkTemplate{
		Name:         "react",
		DisplayName:  "React",
		KeyFiles:     []string{"package.json", "src/App.jsx"},
		PriorityDirs: []string{"src/components"},
		Patterns:     []string{"Function components with hooks"},
		Practices:    []string{"Keep components small"},
	}
}

func fullPayload() *domain.ContextPayload {
	return &domain.ContextPayload{
		ProjectID:     "/work/demo",
		SessionID:     "3f2a9c1e-0000-4000-8000-000000000001",
		TemplateName:  "react",
		Template:      reactTemplate(),
		IsFullContext: true,
		TokenEstimate: 31,
		SelectedFiles: []domain.SelectedFile{
			{
				Path:          "src/utils.ts",
				Language:      "typescript",
				Score:         40,
				Content:       "export const add = (a: number, b: number) => a + b;\n",
				ImportedBy:    []string{"src/App.tsx"},
				TokenEstimate: 13,
			},
			{
				Path:          "src/big.js",
				Language:      "javascript",
				Score:         12,
				TokenEstimate: 5,
				Truncated:     true,
				Chunks: []domain.Chunk{{
					Content:   "function a() {}\n",
					StartLine: 1,
					EndLine:   1,
					Summary:   domain.ChunkSummary{Definitions: 1},
				}},
			},
		},
		Omitted: []string{"package.json"},
	}
}

func TestText_Payload(t *testing.T) {
	tests := []struct {
		name    string
		payload *domain.ContextPayload
		golden  string
	}{
		{name: "full", payload: fullPayload(), golden: "payload_full"},
		{
			name: "incremental degraded",
			payload: &domain.ContextPayload{
				ProjectID:      "/work/demo",
				SessionID:      "s-1",
				TemplateName:   domain.TemplateNone,
				SelectedFiles:  []domain.SelectedFile{},
				ContinuityNote: "Previously shown files: a.ts, b.ts.",
				Degraded:       true,
			},
			golden: "payload_incremental",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			r := render.NewTextWithProfile(buf, termenv.Ascii)

			require.NoError(t, r.Payload(tt.payload))

			g := goldie.New(t)
			g.Assert(t, tt.golden, buf.Bytes())
		})
	}
}

func TestText_Graph(t *testing.T) {
	buf := &bytes.Buffer{}
	r := render.NewTextWithProfile(buf, termenv.Ascii)

	err := r.Graph([]domain.DependencyNode{
		{File: "src/App.tsx", Imports: []string{"src/utils.ts"}, Related: []string{"src/utils.ts"}},
		{File: "src/utils.ts", ImportedBy: []string{"src/App.tsx"}, Related: []string{"src/App.tsx"}},
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "graph", buf.Bytes())
}

func TestText_Template(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, render.NewTextWithProfile(buf, termenv.Ascii).Template(reactTemplate()))

		g := goldie.New(t)
		g.Assert(t, "template_match", buf.Bytes())
	})

	t.Run("no match", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, render.NewTextWithProfile(buf, termenv.Ascii).Template(nil))

		g := goldie.New(t)
		g.Assert(t, "template_none", buf.Bytes())
	})
}

func TestText_ColorProfileAddsEscapes(t *testing.T) {
	buf := &bytes.Buffer{}
	r := render.NewTextWithProfile(buf, termenv.ANSI)

	require.NoError(t, r.Template(nil))

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestJSON_Payload(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, render.NewJSON(buf).Payload(fullPayload()))

	var decoded domain.ContextPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *fullPayload(), decoded)
	assert.Contains(t, buf.String(), `"is_full_context": true`)
	assert.Contains(t, buf.String(), "(a: number, b: number) => a + b")
}

func TestJSON_Graph(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, render.NewJSON(buf).Graph(nil))

	assert.JSONEq(t, `{"nodes": []}`, buf.String())
}

func TestJSON_Template(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, render.NewJSON(buf).Template(reactTemplate()))

		var doc struct {
			TemplateName string                    `json:"template_name"`
			Template     *domain.FrameworkTemplate `json:"template"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, "react", doc.TemplateName)
		assert.Equal(t, reactTemplate(), doc.Template)
	})

	t.Run("no match", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, render.NewJSON(buf).Template(nil))

		assert.JSONEq(t, `{"template_name": "none", "template": null}`, buf.String())
	})
}
