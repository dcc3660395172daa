package graph

import "container/list"

// ProcessingQueue wraps a list-based queue of dense node indices for
// Kahn-style in-degree peeling.
type ProcessingQueue struct {
	queue *list.List
}

// NewProcessingQueue creates a new empty processing queue.
func NewProcessingQueue() *ProcessingQueue {
	return &ProcessingQueue{
		queue: list.New(),
	}
}

// Enqueue adds a node index to the back of the queue.
func (pq *ProcessingQueue) Enqueue(node int) {
	pq.queue.PushBack(node)
}

// Dequeue removes and returns the node index at the front of the queue.
// Returns -1 and false if the queue is empty.
func (pq *ProcessingQueue) Dequeue() (int, bool) {
	if pq.queue.Len() == 0 {
		return -1, false
	}
	elem := pq.queue.Front()
	pq.queue.Remove(elem)
	return elem.Value.(int), true
}

// IsEmpty returns true if the queue has no nodes.
func (pq *ProcessingQueue) IsEmpty() bool {
	return pq.queue.Len() == 0
}

// calculateInDegrees computes the number of incoming edges for each
// dense node index. A self-loop counts toward its own node's in-degree,
// which keeps self-loop nodes out of the initial peel queue.
func (g *Graph) calculateInDegrees() []int {
	inDegree := make([]int, len(g.adj))
	for _, neighbors := range g.adj {
		for _, nb := range neighbors {
			inDegree[nb]++
		}
	}
	return inDegree
}

// cyclicCore peels nodes with in-degree zero until none remain and
// returns, per dense index, whether the node survived. A peeled node
// cannot lie on any simple cycle, so the longest-cycle search can
// ignore it entirely. Returns nil when no node survives, i.e. the
// graph is acyclic.
func (g *Graph) cyclicCore() []bool {
	inDegree := g.calculateInDegrees()

	queue := NewProcessingQueue()
	for idx, degree := range inDegree {
		if degree == 0 {
			queue.Enqueue(idx)
		}
	}

	peeled := 0
	for !queue.IsEmpty() {
		node, _ := queue.Dequeue()
		peeled++
		for _, nb := range g.adj[node] {
			inDegree[nb]--
			if inDegree[nb] == 0 {
				queue.Enqueue(nb)
			}
		}
	}

	if peeled == len(g.adj) {
		return nil
	}

	core := make([]bool, len(g.adj))
	for idx, degree := range inDegree {
		core[idx] = degree > 0
	}
	return core
}

// HasCycle returns true if the graph contains at least one directed
// cycle (self-loops included).
func (g *Graph) HasCycle() bool {
	return g.cyclicCore() != nil
}
