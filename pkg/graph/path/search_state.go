package path

import (
	"iter"
	"math"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
)

// SearchState holds the transient per-node fields of a search.
// Index is the node id.
type SearchState struct {
	visited   []bool         // node is finalized, its cost is locked in
	localCost []float64      // best known cost from the origin, +Inf if unknown
	priority  []float64      // localCost + heuristic to the destination, +Inf if unknown
	parent    []graph.NodeId // predecessor on the best known path, -1 if none
	origin    graph.NodeId   // root of the parent tree
}

// Reset all fields to their initial value.
// The buffers are reused if the size did not change
func (s *SearchState) Reset(size int) {
	if len(s.visited) != size {
		s.visited = make([]bool, size)
		s.localCost = make([]float64, size)
		s.priority = make([]float64, size)
		s.parent = make([]graph.NodeId, size)
	}
	inf := math.Inf(1)
	for i := 0; i < size; i++ {
		s.visited[i] = false
		s.localCost[i] = inf
		s.priority[i] = inf
		s.parent[i] = -1
	}
	s.origin = -1
}

func (s *SearchState) Size() int { return len(s.visited) }

func (s *SearchState) inRange(id graph.NodeId) bool { return id >= 0 && id < len(s.visited) }

func (s *SearchState) Visited(id graph.NodeId) bool {
	return s.inRange(id) && s.visited[id]
}

func (s *SearchState) LocalCost(id graph.NodeId) float64 {
	if !s.inRange(id) {
		return math.Inf(1)
	}
	return s.localCost[id]
}

func (s *SearchState) Priority(id graph.NodeId) float64 {
	if !s.inRange(id) {
		return math.Inf(1)
	}
	return s.priority[id]
}

func (s *SearchState) Parent(id graph.NodeId) graph.NodeId {
	if !s.inRange(id) {
		return -1
	}
	return s.parent[id]
}

// Copy of all local costs
func (s *SearchState) LocalCosts() []float64 {
	costs := make([]float64, len(s.localCost))
	copy(costs, s.localCost)
	return costs
}

// Copy of all parents
func (s *SearchState) Parents() []graph.NodeId {
	parents := make([]graph.NodeId, len(s.parent))
	copy(parents, s.parent)
	return parents
}

// Check if the parent chain of destination ends at the origin
func (s *SearchState) reachesOrigin(destination graph.NodeId) bool {
	if !s.inRange(destination) || s.origin < 0 {
		return false
	}
	id := destination
	// the parent ids form a tree, the bound only protects against a corrupted state
	for steps := 0; steps <= len(s.parent); steps++ {
		if id == s.origin {
			return true
		}
		id = s.parent[id]
		if id < 0 {
			return false
		}
	}
	return false
}

// Backtrack yields the nodes from destination back to the origin along the parent ids.
// Nothing is yielded if the destination was not reached.
// The sequence only reads the state and can be iterated several times
func (s *SearchState) Backtrack(destination graph.NodeId) iter.Seq[graph.NodeId] {
	return func(yield func(graph.NodeId) bool) {
		if !s.reachesOrigin(destination) {
			return
		}
		for id := destination; id != -1; id = s.parent[id] {
			if !yield(id) {
				return
			}
			if id == s.origin {
				return
			}
		}
	}
}
