package graph

import (
	"fmt"
	"strings"

	"github.com/natevvv/grid-pathfinder/pkg/geometry"
)

// NodeId is the index of a node in the node arena of a graph.
// Negative values mean "no node".
type NodeId = int

// Node is a cell of the search space.
// The search only relaxes edges into nodes which are not an obstacle.
type Node struct {
	Point    geometry.Point
	Obstacle bool
}

// Graph is a static set of nodes with fixed adjacency.
// Neighbor lists are owned by the graph and refer to nodes by NodeId.
type Graph interface {
	GetNode(id NodeId) *Node
	GetNodes() []Node
	GetNeighbors(id NodeId) []NodeId
	IsObstacle(id NodeId) bool
	NodeCount() int
	ArcCount() int
	AsString() string
}

// DynamicGraph allows to build the adjacency
type DynamicGraph interface {
	Graph
	AddNode(n Node)
	AddArc(from, to NodeId) bool
}

// EditableGraph allows to change the obstacle flags between two searches
type EditableGraph interface {
	Graph
	SetObstacle(id NodeId, obstacle bool)
}

var (
	_ DynamicGraph  = (*AdjacencyListGraph)(nil)
	_ EditableGraph = (*AdjacencyArrayGraph)(nil)
	_ EditableGraph = (*GridGraph)(nil)
)

func MakeNode(x, y int, obstacle bool) Node {
	return Node{Point: geometry.MakePoint(x, y), Obstacle: obstacle}
}

// Euclidean distance between the nodes a and b of g
func Distance(g Graph, a, b NodeId) float64 {
	return g.GetNode(a).Point.DistanceTo(g.GetNode(b).Point)
}

// Check that every arc a -> b has a reverse arc b -> a.
// Returns the first arc which has no reverse arc
func IsSymmetric(g Graph) (bool, [2]NodeId) {
	for from := 0; from < g.NodeCount(); from++ {
		for _, to := range g.GetNeighbors(from) {
			found := false
			for _, back := range g.GetNeighbors(to) {
				if back == from {
					found = true
					break
				}
			}
			if !found {
				return false, [2]NodeId{from, to}
			}
		}
	}
	return true, [2]NodeId{-1, -1}
}

func GraphAsString(g Graph) string {
	var sb strings.Builder

	// write number of nodes and number of edges
	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))

	sb.WriteString("#Nodes\n")
	// list all nodes structured as "id x y obstacle"
	for i := 0; i < g.NodeCount(); i++ {
		node := g.GetNode(i)
		obstacle := 0
		if node.Obstacle {
			obstacle = 1
		}
		sb.WriteString(fmt.Sprintf("%v %v %v %v\n", i, node.Point.X, node.Point.Y, obstacle))
	}

	sb.WriteString("#Edges\n")
	// list all edges structured as "fromId targetId"
	for i := 0; i < g.NodeCount(); i++ {
		for _, to := range g.GetNeighbors(i) {
			sb.WriteString(fmt.Sprintf("%v %v\n", i, to))
		}
	}
	return sb.String()
}
