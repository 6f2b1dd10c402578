package graph

import (
	"fmt"
)

// Implementation for dynamic graphs
type AdjacencyListGraph struct {
	Nodes    []Node     // The nodes of the graph
	Edges    [][]NodeId // The neighbors of the nodes. The first slice specifies to which node the neighbors belong
	arcCount int        // the number of arcs in the graph
}

func NewAdjacencyListGraph() *AdjacencyListGraph {
	return &AdjacencyListGraph{
		Nodes:    make([]Node, 0),
		Edges:    make([][]NodeId, 0),
		arcCount: 0,
	}
}

// Return the node for the given id
func (alg *AdjacencyListGraph) GetNode(id NodeId) *Node {
	if id < 0 || id >= alg.NodeCount() {
		panic(id)
	}
	return &alg.Nodes[id]
}

// Return all nodes of the graph
func (alg *AdjacencyListGraph) GetNodes() []Node {
	return alg.Nodes
}

// Get the neighbors for the given node
func (alg *AdjacencyListGraph) GetNeighbors(id NodeId) []NodeId {
	if id < 0 || id >= alg.NodeCount() {
		panic(id)
	}
	return alg.Edges[id]
}

func (alg *AdjacencyListGraph) IsObstacle(id NodeId) bool {
	return alg.GetNode(id).Obstacle
}

func (alg *AdjacencyListGraph) SetObstacle(id NodeId, obstacle bool) {
	alg.GetNode(id).Obstacle = obstacle
}

// Return the number of total nodes
func (alg *AdjacencyListGraph) NodeCount() int {
	return len(alg.Nodes)
}

// Return the number of total arcs
func (alg *AdjacencyListGraph) ArcCount() int {
	return alg.arcCount
}

// Return a human readable string of the graph
func (alg *AdjacencyListGraph) AsString() string {
	return GraphAsString(alg)
}

// Add a node to the graph
func (alg *AdjacencyListGraph) AddNode(n Node) {
	alg.Nodes = append(alg.Nodes, n)
	alg.Edges = append(alg.Edges, make([]NodeId, 0))
}

// Add an arc to the graph, going from source to target.
// Returns false if the arc already exists
func (alg *AdjacencyListGraph) AddArc(from, to NodeId) bool {
	if from < 0 || to < 0 || from >= alg.NodeCount() || to >= alg.NodeCount() {
		panic(fmt.Sprintf("Arc out of range %v -> %v", from, to))
	}

	for _, neighbor := range alg.Edges[from] {
		if neighbor == to {
			return false
		}
	}

	alg.Edges[from] = append(alg.Edges[from], to)
	alg.arcCount++
	return true
}

// Add the arcs a -> b and b -> a
func (alg *AdjacencyListGraph) AddEdge(a, b NodeId) {
	alg.AddArc(a, b)
	alg.AddArc(b, a)
}
