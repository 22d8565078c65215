package domain

import (
	"iter"
	"slices"
)

// DefaultGraphDepth is the radius of a node's related neighbourhood.
const DefaultGraphDepth = 2

// DependencyNode holds the import relations of a single project file.
type DependencyNode struct {
	File       string   `json:"file"`
	Imports    []string `json:"imports"`
	ImportedBy []string `json:"imported_by"`
	Related    []string `json:"related"`
}

// DependencyGraph is the import graph of a project file set.
// Nodes are kept in the order files were added.
type DependencyGraph struct {
	nodes map[pathKey]*DependencyNode
	order []pathKey
}

// NewDependencyGraph creates an empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodes: make(map[pathKey]*DependencyNode),
	}
}

// AddFile adds a node for the file path. Paths are compared in normalized
// form; adding a path twice returns the existing node.
func (g *DependencyGraph) AddFile(path string) *DependencyNode {
	key := keyOf(path)
	if node, exists := g.nodes[key]; exists {
		return node
	}
	node := &DependencyNode{File: path}
	g.nodes[key] = node
	g.order = append(g.order, key)
	return node
}

// AddEdge records that from imports to. Both files must already be nodes;
// self edges and duplicates are ignored. Edges always name the target node's
// File. It reports whether the edge was added.
func (g *DependencyGraph) AddEdge(from, to string) bool {
	src, ok := g.nodes[keyOf(from)]
	if !ok {
		return false
	}
	dst, ok := g.nodes[keyOf(to)]
	if !ok || dst == src {
		return false
	}
	if slices.Contains(src.Imports, dst.File) {
		return false
	}
	src.Imports = append(src.Imports, dst.File)
	return true
}

// LinkReverse fills ImportedBy from the forward edges, in node order.
func (g *DependencyGraph) LinkReverse() {
	for _, key := range g.order {
		g.nodes[key].ImportedBy = nil
	}
	for _, key := range g.order {
		src := g.nodes[key]
		for _, target := range src.Imports {
			dst := g.nodes[keyOf(target)]
			if !slices.Contains(dst.ImportedBy, src.File) {
				dst.ImportedBy = append(dst.ImportedBy, src.File)
			}
		}
	}
}

// ComputeRelated fills Related on every node with its neighbourhood of the
// given radius.
func (g *DependencyGraph) ComputeRelated(depth int) {
	for _, key := range g.order {
		node := g.nodes[key]
		node.Related = g.Neighborhood(node.File, depth)
	}
}

// Neighborhood returns the files reachable from path within depth hops over
// imports and importers, in breadth-first discovery order. The start file is
// not included. Cycles terminate through the visited set.
func (g *DependencyGraph) Neighborhood(path string, depth int) []string {
	start, ok := g.nodes[keyOf(path)]
	if !ok || depth <= 0 {
		return []string{}
	}

	visited := map[string]bool{start.File: true}
	related := []string{}
	frontier := []*DependencyNode{start}

	for level := 0; level < depth && len(frontier) > 0; level++ {
		var next []*DependencyNode
		for _, node := range frontier {
			for _, neighbor := range node.neighbors() {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				related = append(related, neighbor)
				next = append(next, g.nodes[keyOf(neighbor)])
			}
		}
		frontier = next
	}

	return related
}

func (n *DependencyNode) neighbors() []string {
	out := make([]string, 0, len(n.Imports)+len(n.ImportedBy))
	out = append(out, n.Imports...)
	return append(out, n.ImportedBy...)
}

// Node returns the node for path.
func (g *DependencyGraph) Node(path string) (*DependencyNode, bool) {
	node, ok := g.nodes[keyOf(path)]
	return node, ok
}

// Len returns the number of nodes.
func (g *DependencyGraph) Len() int {
	return len(g.order)
}

// EdgeCount returns the number of forward edges.
func (g *DependencyGraph) EdgeCount() int {
	count := 0
	for _, key := range g.order {
		count += len(g.nodes[key].Imports)
	}
	return count
}

// Nodes returns an iterator over the nodes in insertion order.
func (g *DependencyGraph) Nodes() iter.Seq[*DependencyNode] {
	return func(yield func(*DependencyNode) bool) {
		for _, key := range g.order {
			if !yield(g.nodes[key]) {
				return
			}
		}
	}
}
