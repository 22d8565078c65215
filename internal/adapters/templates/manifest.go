package templates

import (
	"bufio"
	"encoding/json"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/modfile"
	"go.trai.ch/brief/internal/core/domain"
)

type manifestParser func(content string) []string

var manifestParsers = map[string]manifestParser{
	"package.json":     packageJSONDeps,
	"requirements.txt": requirementsDeps,
	"pyproject.toml":   pyprojectDeps,
	"Cargo.toml":       cargoDeps,
	"go.mod":           goModDeps,
}

// declaredDependencies collects dependency names from every recognised
// manifest. Malformed manifests contribute nothing.
func declaredDependencies(files []domain.ProjectFile) map[string]struct{} {
	deps := make(map[string]struct{})
	for i := range files {
		parse, ok := manifestParsers[path.Base(files[i].Path)]
		if !ok {
			continue
		}
		for _, name := range parse(files[i].Content) {
			deps[normalizeDependency(name)] = struct{}{}
		}
	}
	return deps
}

func normalizeDependency(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func packageJSONDeps(content string) []string {
	var pkg struct {
		Dependencies     map[string]string `json:"dependencies"`
		DevDependencies  map[string]string `json:"devDependencies"`
		PeerDependencies map[string]string `json:"peerDependencies"`
	}
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return nil
	}

	var names []string
	for _, set := range []map[string]string{pkg.Dependencies, pkg.DevDependencies, pkg.PeerDependencies} {
		for name := range set {
			names = append(names, name)
		}
	}
	return names
}

func requirementsDeps(content string) []string {
	var names []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" || strings.HasPrefix(line, "-") {
			continue
		}
		if name := requirementName(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// requirementName cuts a PEP 508 requirement down to the distribution name.
func requirementName(spec string) string {
	if i := strings.IndexAny(spec, "=<>!~[;@ "); i >= 0 {
		spec = spec[:i]
	}
	return strings.TrimSpace(spec)
}

func pyprojectDeps(content string) []string {
	var doc struct {
		Project struct {
			Dependencies         []string            `toml:"dependencies"`
			OptionalDependencies map[string][]string `toml:"optional-dependencies"`
		} `toml:"project"`
		Tool struct {
			Poetry struct {
				Dependencies    map[string]any `toml:"dependencies"`
				DevDependencies map[string]any `toml:"dev-dependencies"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if _, err := toml.Decode(content, &doc); err != nil {
		return nil
	}

	var names []string
	for _, spec := range doc.Project.Dependencies {
		names = append(names, requirementName(spec))
	}
	for _, group := range doc.Project.OptionalDependencies {
		for _, spec := range group {
			names = append(names, requirementName(spec))
		}
	}
	for name := range doc.Tool.Poetry.Dependencies {
		if name != "python" {
			names = append(names, name)
		}
	}
	for name := range doc.Tool.Poetry.DevDependencies {
		names = append(names, name)
	}
	return names
}

func cargoDeps(content string) []string {
	var doc struct {
		Dependencies    map[string]any `toml:"dependencies"`
		DevDependencies map[string]any `toml:"dev-dependencies"`
		Workspace       struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"workspace"`
	}
	if _, err := toml.Decode(content, &doc); err != nil {
		return nil
	}

	var names []string
	for _, set := range []map[string]any{doc.Dependencies, doc.DevDependencies, doc.Workspace.Dependencies} {
		for name := range set {
			names = append(names, name)
		}
	}
	return names
}

func goModDeps(content string) []string {
	f, err := modfile.ParseLax("go.mod", []byte(content), nil)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(f.Require))
	for _, req := range f.Require {
		names = append(names, req.Mod.Path)
	}
	return names
}
