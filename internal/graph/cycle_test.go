package graph

import "testing"

// buildGraph constructs a graph from (from, to) pairs.
func buildGraph(edges [][2]int) *Graph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestLongestCycle_EmptyGraph(t *testing.T) {
	g := New()
	if got := g.LongestCycle(); got != 0 {
		t.Errorf("empty graph: got %d, want 0", got)
	}
}

func TestLongestCycle_SingleEdgeNoCycle(t *testing.T) {
	g := buildGraph([][2]int{{0, 1}})
	if got := g.LongestCycle(); got != 0 {
		t.Errorf("single edge: got %d, want 0", got)
	}
}

func TestLongestCycle_SelfLoop(t *testing.T) {
	g := buildGraph([][2]int{{0, 0}})
	if got := g.LongestCycle(); got != 1 {
		t.Errorf("self-loop: got %d, want 1", got)
	}
}

func TestLongestCycle_SimpleKCycles(t *testing.T) {
	// A chordless k-cycle must report exactly k.
	for k := 2; k <= 6; k++ {
		var edges [][2]int
		for i := 0; i < k; i++ {
			edges = append(edges, [2]int{i, (i + 1) % k})
		}
		g := buildGraph(edges)
		if got := g.LongestCycle(); got != k {
			t.Errorf("%d-cycle: got %d, want %d", k, got, k)
		}
	}
}

func TestLongestCycle_DuplicateEdgesCollapse(t *testing.T) {
	g := New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(0, 1)
	if got := g.LongestCycle(); got != 2 {
		t.Errorf("duplicate edges: got %d, want 2", got)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("edge count after duplicate: got %d, want 2", g.EdgeCount())
	}
}

func TestLongestCycle_TreeHasNoCycle(t *testing.T) {
	// Binary tree on 15 nodes, edges point root -> leaves.
	var edges [][2]int
	for i := 0; i < 7; i++ {
		edges = append(edges, [2]int{i, 2*i + 1}, [2]int{i, 2*i + 2})
	}
	g := buildGraph(edges)
	if got := g.LongestCycle(); got != 0 {
		t.Errorf("tree: got %d, want 0", got)
	}
}

func TestLongestCycle_ChordDoesNotShortenAnswer(t *testing.T) {
	// 0 -> 1 -> 2 -> 0 with chord 0 -> 2: longest stays 3.
	g := buildGraph([][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 2}})
	if got := g.LongestCycle(); got != 3 {
		t.Errorf("cycle with chord: got %d, want 3", got)
	}
}

func TestLongestCycle_TwoCyclesSharingAVertex(t *testing.T) {
	// Figure eight through 0: 0<->1 and 0->2->3->0. A simple cycle
	// cannot reuse 0, so the answer is the longer lobe.
	g := buildGraph([][2]int{{0, 1}, {1, 0}, {0, 2}, {2, 3}, {3, 0}})
	if got := g.LongestCycle(); got != 3 {
		t.Errorf("figure eight: got %d, want 3", got)
	}
}

func TestLongestCycle_DisjointComponents(t *testing.T) {
	// A 2-cycle and a separate 4-cycle; the 4-cycle wins.
	g := buildGraph([][2]int{
		{0, 1}, {1, 0},
		{10, 11}, {11, 12}, {12, 13}, {13, 10},
	})
	if got := g.LongestCycle(); got != 4 {
		t.Errorf("disjoint components: got %d, want 4", got)
	}
}

func TestLongestCycle_TailIntoCycle(t *testing.T) {
	// Acyclic tail 5 -> 6 -> 0 feeding a 3-cycle; the tail is peeled
	// and must not influence the result.
	g := buildGraph([][2]int{{5, 6}, {6, 0}, {0, 1}, {1, 2}, {2, 0}})
	if got := g.LongestCycle(); got != 3 {
		t.Errorf("tail into cycle: got %d, want 3", got)
	}
}

func TestLongestCycle_SelfLoopBesideLongerCycle(t *testing.T) {
	g := buildGraph([][2]int{{0, 0}, {1, 2}, {2, 1}})
	if got := g.LongestCycle(); got != 2 {
		t.Errorf("self-loop beside 2-cycle: got %d, want 2", got)
	}
}

func TestLongestCycle_SparseNodeIDs(t *testing.T) {
	// Node ids from a shared intern table need not be dense.
	g := buildGraph([][2]int{{1000, 2000}, {2000, 3000}, {3000, 1000}})
	if got := g.LongestCycle(); got != 3 {
		t.Errorf("sparse ids: got %d, want 3", got)
	}
}

func TestLongestCycle_CompleteGraphUsesAllVertices(t *testing.T) {
	// K4 directed both ways contains a Hamiltonian cycle of length 4.
	var edges [][2]int
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	g := buildGraph(edges)
	if got := g.LongestCycle(); got != 4 {
		t.Errorf("K4: got %d, want 4", got)
	}
}

func TestHasCycle(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]int
		want  bool
	}{
		{"empty", nil, false},
		{"chain", [][2]int{{0, 1}, {1, 2}}, false},
		{"self-loop", [][2]int{{0, 0}}, true},
		{"two-cycle", [][2]int{{0, 1}, {1, 0}}, true},
		{"diamond dag", [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(tt.edges)
			if got := g.HasCycle(); got != tt.want {
				t.Errorf("HasCycle() = %v, want %v", got, tt.want)
			}
		})
	}
}
