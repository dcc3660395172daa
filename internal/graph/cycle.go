package graph

import "math/bits"

// visitedSet is a fixed-width bitset over dense node indices, tracking
// which nodes the current simple path has already visited.
type visitedSet []uint64

func newVisitedSet(n int) visitedSet {
	return make(visitedSet, (n+63)/64)
}

func (s visitedSet) has(idx int) bool {
	return s[idx/64]&(1<<(uint(idx)%64)) != 0
}

func (s visitedSet) set(idx int) {
	s[idx/64] |= 1 << (uint(idx) % 64)
}

// withNode returns a copy of the set with idx added. Each exploration
// frame owns its set; copying on push keeps sibling branches
// independent without backtracking bookkeeping.
func (s visitedSet) withNode(idx int) visitedSet {
	next := make(visitedSet, len(s))
	copy(next, s)
	next.set(idx)
	return next
}

func (s visitedSet) count() int {
	total := 0
	for _, word := range s {
		total += bits.OnesCount64(word)
	}
	return total
}

// pathFrame is one pending state of the simple-path exploration: the
// vertex the path currently ends at and the set of vertices on it.
type pathFrame struct {
	node    int
	visited visitedSet
}

// LongestCycle returns the maximum number of hops in any simple
// directed cycle, or 0 if the graph is acyclic. A self-loop is a cycle
// of length 1.
//
// The search enumerates simple paths exhaustively from every candidate
// start vertex, so it is exponential in the worst case. That is
// acceptable for the intended workload, where a single group stays in
// the tens to low hundreds of vertices. The in-degree peel below trims
// the graph to its cyclic core first, which resolves acyclic groups
// without entering the enumeration at all.
func (g *Graph) LongestCycle() int {
	core := g.cyclicCore()
	if core == nil {
		return 0
	}

	best := 0
	for start := range g.adj {
		if !core[start] {
			continue
		}

		visited := newVisitedSet(len(g.adj))
		visited.set(start)
		stack := []pathFrame{{node: start, visited: visited}}

		for len(stack) > 0 {
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, nb := range g.adj[frame.node] {
				if nb == start {
					// Closed a cycle back to the start; its hop count
					// equals the number of vertices on the path.
					if length := frame.visited.count(); length > best {
						best = length
					}
				} else if core[nb] && !frame.visited.has(nb) {
					stack = append(stack, pathFrame{
						node:    nb,
						visited: frame.visited.withNode(nb),
					})
				}
			}
		}
	}
	return best
}
