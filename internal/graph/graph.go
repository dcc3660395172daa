// Package graph provides the directed graph structure and the simple
// cycle search used to analyze one group of routing edges.
package graph

// Edge represents a directed edge between two interned node ids.
type Edge struct {
	From int
	To   int
}

// Graph is a directed graph over integer node ids. Node ids may be
// sparse (they come from an intern table that can outlive a single
// group); internally they are remapped to dense indices. Duplicate
// edges collapse to one: edges are a set, not a multiset.
type Graph struct {
	index map[int]int // external node id -> dense index
	adj   [][]int     // dense index -> dense neighbor indices
	edges map[Edge]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[int]int),
		edges: make(map[Edge]struct{}),
	}
}

// AddEdge adds a directed edge from -> to. Adding an edge that is
// already present has no effect.
func (g *Graph) AddEdge(from, to int) {
	e := Edge{From: from, To: to}
	if _, exists := g.edges[e]; exists {
		return
	}
	g.edges[e] = struct{}{}

	f := g.intern(from)
	t := g.intern(to)
	g.adj[f] = append(g.adj[f], t)
}

// intern maps an external node id to its dense index, allocating a new
// index (and adjacency slot) on first sighting.
func (g *Graph) intern(id int) int {
	if idx, exists := g.index[id]; exists {
		return idx
	}
	idx := len(g.adj)
	g.index[id] = idx
	g.adj = append(g.adj, nil)
	return idx
}

// NodeCount returns the number of distinct nodes seen so far.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
