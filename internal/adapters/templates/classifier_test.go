package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brief/internal/adapters/templates"
	"go.trai.ch/brief/internal/core/domain"
)

func file(path, content string) domain.ProjectFile {
	return domain.ProjectFile{ID: path, Path: path, Content: content}
}

func classify(t *testing.T, files ...domain.ProjectFile) string {
	t.Helper()
	tpl, err := templates.NewDefault().Classify(files)
	require.NoError(t, err)
	return domain.TemplateName(tpl)
}

func TestClassify_NoFrameworkMarkers(t *testing.T) {
	got := classify(t,
		file("package.json", `{"name":"demo","version":"1.0.0"}`),
		file("src/App.tsx", "import { add } from './utils';\nexport const App = () => add(1, 2);\n"),
		file("src/utils.ts", "export const add = (a: number, b: number) => a + b;\n"),
	)

	assert.Equal(t, domain.TemplateNone, got)
}

func TestClassify_EmptyProject(t *testing.T) {
	assert.Equal(t, domain.TemplateNone, classify(t))
}

func TestClassify_Catalog(t *testing.T) {
	tests := []struct {
		name  string
		files []domain.ProjectFile
		want  string
	}{
		{
			name:  "next before react",
			files: []domain.ProjectFile{file("package.json", `{"dependencies":{"next":"14.0.0","react":"18.2.0"}}`)},
			want:  "nextjs",
		},
		{
			name:  "react with vite",
			files: []domain.ProjectFile{file("package.json", `{"dependencies":{"react":"18"},"devDependencies":{"vite":"5"}}`)},
			want:  "react-vite",
		},
		{
			name:  "plain react",
			files: []domain.ProjectFile{file("package.json", `{"dependencies":{"react":"18"}}`)},
			want:  "react",
		},
		{
			name:  "angular by workspace file",
			files: []domain.ProjectFile{file("angular.json", "{}")},
			want:  "angular",
		},
		{
			name:  "fastapi from requirements",
			files: []domain.ProjectFile{file("requirements.txt", "# api\nFastAPI==0.110.0\nuvicorn[standard]>=0.29\n")},
			want:  "fastapi",
		},
		{
			name: "flask from pyproject",
			files: []domain.ProjectFile{file("pyproject.toml", `
[project]
name = "demo"
dependencies = ["flask>=3.0", "requests"]
`)},
			want: "flask",
		},
		{
			name: "django from poetry",
			files: []domain.ProjectFile{file("pyproject.toml", `
[tool.poetry.dependencies]
python = "^3.12"
Django = "^5.0"
`)},
			want: "django",
		},
		{
			name: "go module",
			files: []domain.ProjectFile{
				file("go.mod", "module example.com/demo\n\ngo 1.22\n\nrequire github.com/spf13/cobra v1.8.0\n"),
				file("main.go", "package main"),
			},
			want: "go-module",
		},
		{
			name: "cargo",
			files: []domain.ProjectFile{file("Cargo.toml", `
[package]
name = "demo"

[dependencies]
serde = { version = "1", features = ["derive"] }
`)},
			want: "rust-cargo",
		},
		{
			name:  "static site needs assets",
			files: []domain.ProjectFile{file("index.html", "<html></html>"), file("css/site.css", "body{}")},
			want:  "static-site",
		},
		{
			name:  "static site without assets",
			files: []domain.ProjectFile{file("index.html", "<html></html>")},
			want:  domain.TemplateNone,
		},
		{
			name:  "malformed manifest is ignored",
			files: []domain.ProjectFile{file("package.json", `{"dependencies":`)},
			want:  domain.TemplateNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(t, tt.files...))
		})
	}
}

func TestClassify_ReturnsCopy(t *testing.T) {
	c := templates.NewDefault()
	files := []domain.ProjectFile{file("angular.json", "{}")}

	first, err := c.Classify(files)
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := c.Classify(files)
	require.NoError(t, err)
	assert.Equal(t, "angular", second.Name)
}

func TestClassify_EmptyDetectorNeverMatches(t *testing.T) {
	c := templates.New([]domain.FrameworkTemplate{
		{Name: "catch-all"},
		{Name: "readme", Detector: domain.DetectorSpec{All: []domain.PredicateRef{{Name: "has_file", Args: []string{"README.md"}}}}},
	}, templates.DefaultRegistry())

	tpl, err := c.Classify([]domain.ProjectFile{file("README.md", "# demo")})
	require.NoError(t, err)
	assert.Equal(t, "readme", domain.TemplateName(tpl))
}

func TestClassify_UnknownPredicate(t *testing.T) {
	c := templates.New([]domain.FrameworkTemplate{
		{Name: "broken", Detector: domain.DetectorSpec{Any: []domain.PredicateRef{{Name: "nope"}}}},
	}, templates.DefaultRegistry())

	_, err := c.Classify(nil)
	assert.ErrorContains(t, err, domain.ErrUnknownPredicate.Error())
}

func TestClassify_CustomPredicate(t *testing.T) {
	reg := templates.DefaultRegistry()
	reg.Register("min_files", func(fs *templates.FileSet, _ []string) bool {
		return fs.HasExtension(".md")
	})

	c := templates.New([]domain.FrameworkTemplate{
		{Name: "docs", Detector: domain.DetectorSpec{All: []domain.PredicateRef{{Name: "min_files"}}}},
	}, reg)

	tpl, err := c.Classify([]domain.ProjectFile{file("docs/intro.MD", "")})
	require.NoError(t, err)
	assert.Equal(t, "docs", domain.TemplateName(tpl))
}
