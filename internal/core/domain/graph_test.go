package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brief/internal/core/domain"
)

func buildGraph(t *testing.T, files []string, edges [][2]string) *domain.DependencyGraph {
	t.Helper()
	g := domain.NewDependencyGraph()
	for _, f := range files {
		g.AddFile(f)
	}
	for _, e := range edges {
		require.True(t, g.AddEdge(e[0], e[1]), "edge %s -> %s", e[0], e[1])
	}
	g.LinkReverse()
	return g
}

func TestDependencyGraph_CycleNeighborhood(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][2]string{
		{"A", "B"},
		{"B", "C"},
		{"C", "A"},
	})

	g.ComputeRelated(2)

	a, ok := g.Node("A")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"B", "C"}, a.Related)
	assert.NotContains(t, a.Related, "A")
}

func TestDependencyGraph_NeighborhoodIsBounded(t *testing.T) {
	g := buildGraph(t, []string{"a", "b", "c", "d"}, [][2]string{
		{"a", "b"},
		{"b", "c"},
		{"c", "d"},
	})

	assert.Equal(t, []string{"b"}, g.Neighborhood("a", 1))
	assert.Equal(t, []string{"b", "c"}, g.Neighborhood("a", 2))
	assert.Equal(t, []string{"b", "c", "d"}, g.Neighborhood("a", 3))
	assert.Equal(t, []string{"c", "a", "d"}, g.Neighborhood("b", 2))
	assert.Empty(t, g.Neighborhood("a", 0))
	assert.Empty(t, g.Neighborhood("missing", 2))
}

func TestDependencyGraph_ReverseEdges(t *testing.T) {
	g := buildGraph(t, []string{"app", "utils", "math"}, [][2]string{
		{"app", "utils"},
		{"math", "utils"},
	})

	utils, ok := g.Node("utils")
	require.True(t, ok)
	assert.Equal(t, []string{"app", "math"}, utils.ImportedBy)
	assert.Empty(t, utils.Imports)

	// Relinking must not duplicate importers.
	g.LinkReverse()
	assert.Equal(t, []string{"app", "math"}, utils.ImportedBy)
}

func TestDependencyGraph_AddEdgeGuards(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddFile("a")
	g.AddFile("b")

	assert.True(t, g.AddEdge("a", "b"))
	assert.False(t, g.AddEdge("a", "b"), "duplicate edge")
	assert.False(t, g.AddEdge("a", "a"), "self edge")
	assert.False(t, g.AddEdge("a", "missing"), "unknown target")
	assert.False(t, g.AddEdge("missing", "a"), "unknown source")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestDependencyGraph_NodesKeepInsertionOrder(t *testing.T) {
	g := domain.NewDependencyGraph()
	for _, f := range []string{"z.ts", "a.ts", "m.ts", "a.ts"} {
		g.AddFile(f)
	}

	var got []string
	for n := range g.Nodes() {
		got = append(got, n.File)
	}

	assert.Equal(t, []string{"z.ts", "a.ts", "m.ts"}, got)
	assert.Equal(t, 3, g.Len())
}

func TestDependencyGraph_NormalizedPaths(t *testing.T) {
	g := domain.NewDependencyGraph()
	app := g.AddFile("src/App.tsx")
	g.AddFile("src/utils.ts")

	assert.Same(t, app, g.AddFile("./src/App.tsx"))
	assert.True(t, g.AddEdge("./src/App.tsx", `src\utils.ts`))
	assert.False(t, g.AddEdge("src/App.tsx", "src/./utils.ts"), "same edge in another spelling")
	assert.False(t, g.AddEdge("src/App.tsx", "./src/App.tsx"), "self edge in another spelling")
	g.LinkReverse()

	node, ok := g.Node("./src/utils.ts")
	require.True(t, ok)
	assert.Equal(t, []string{"src/App.tsx"}, node.ImportedBy)
	assert.Equal(t, []string{"src/utils.ts"}, app.Imports)
	assert.Equal(t, []string{"src/utils.ts"}, g.Neighborhood("./src/App.tsx", 1))
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: ".", want: ""},
		{in: "src/App.tsx", want: "src/App.tsx"},
		{in: "./src/App.tsx", want: "src/App.tsx"},
		{in: `src\components\Button.tsx`, want: "src/components/Button.tsx"},
		{in: "src//lib/../utils.ts", want: "src/utils.ts"},
		{in: "src/", want: "src"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizePath(tt.in))
		})
	}
}
