package graph

import (
	"fmt"
)

// Implementation for static graphs.
// The neighbors of node i are stored in arcs[Offsets[i]:Offsets[i+1]]
type AdjacencyArrayGraph struct {
	Nodes   []Node
	arcs    []NodeId
	Offsets []int
}

// Create an AdjacencyArrayGraph from the given graph
func NewAdjacencyArrayFromGraph(g Graph) *AdjacencyArrayGraph {
	nodes := make([]Node, 0, g.NodeCount())
	arcs := make([]NodeId, 0, g.ArcCount())
	offsets := make([]int, g.NodeCount()+1)

	for i := 0; i < g.NodeCount(); i++ {
		// add node
		nodes = append(nodes, *g.GetNode(i))

		// add all edges of node
		arcs = append(arcs, g.GetNeighbors(i)...)

		// set stop-offset
		offsets[i+1] = len(arcs)
	}

	aag := AdjacencyArrayGraph{Nodes: nodes, arcs: arcs, Offsets: offsets}
	return &aag
}

// Get the node for the given id
func (aag *AdjacencyArrayGraph) GetNode(id NodeId) *Node {
	if id < 0 || id >= aag.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return &aag.Nodes[id]
}

// get all nodes of the graph
func (aag *AdjacencyArrayGraph) GetNodes() []Node {
	return aag.Nodes
}

// Get the neighbors for the given node id
func (aag *AdjacencyArrayGraph) GetNeighbors(id NodeId) []NodeId {
	if id < 0 || id >= aag.NodeCount() {
		panic(fmt.Sprintf("NodeId %d is not contained in the graph.", id))
	}
	return aag.arcs[aag.Offsets[id]:aag.Offsets[id+1]]
}

func (aag *AdjacencyArrayGraph) IsObstacle(id NodeId) bool {
	return aag.GetNode(id).Obstacle
}

// Change the obstacle flag. The adjacency is not changed
func (aag *AdjacencyArrayGraph) SetObstacle(id NodeId, obstacle bool) {
	aag.GetNode(id).Obstacle = obstacle
}

// Returns the number of Nodes in the graph
func (aag *AdjacencyArrayGraph) NodeCount() int {
	return len(aag.Nodes)
}

// Returns the total number of arcs in the graph
func (aag *AdjacencyArrayGraph) ArcCount() int {
	return len(aag.arcs)
}

// Returns a human readable string of the graph
func (aag *AdjacencyArrayGraph) AsString() string {
	return GraphAsString(aag)
}
