package path

import (
	"context"
	"reflect"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
)

type Navigator interface {
	ComputeShortestPath(ctx context.Context, origin, destination graph.NodeId) (float64, error) // Compute the shortest path from the origin to the destination. Returns -1 if there is no path
	GetPath(origin, destination graph.NodeId) []graph.NodeId                                   // Get the path of a previous computation. This contains the nodeIds which lie on the path from source to destination
	GetSearchSpace() []graph.NodeId                                                            // Returns the search space of a previous computation. This contains all nodes which were settled.
	GetPqPops() int                                                                            // Returns the amount of priority queue/heap pops which were performed during the search
	GetPqUpdates() int                                                                         // Get the number of pq pushes/updates
	GetEdgeRelaxations() int                                                                   // Get the number of relaxed edges
	GetRelaxationAttempts() int                                                                // Get the number of attempted edge relaxations
	GetSettledNodes() int                                                                      // Get the number of settled nodes
	GetGraph() graph.Graph                                                                     // Get the used graph
}

// Check that origin and destination are nodes of g
func validateRequest(g graph.Graph, origin, destination graph.NodeId) error {
	if isNilGraph(g) {
		return ErrNilGraph
	}
	if origin < 0 || origin >= g.NodeCount() {
		return &NodeRangeError{NodeId: origin, NodeCount: g.NodeCount(), Role: "origin"}
	}
	if destination < 0 || destination >= g.NodeCount() {
		return &NodeRangeError{NodeId: destination, NodeCount: g.NodeCount(), Role: "destination"}
	}
	return nil
}

// Also true for a nil pointer wrapped in the interface
func isNilGraph(g graph.Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
