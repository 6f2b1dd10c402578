package path

import (
	"context"
	"iter"
	"log"
	"math"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
	"github.com/natevvv/grid-pathfinder/pkg/slice"
)

// the context is checked every cancelCheckInterval settled nodes
const cancelCheckInterval = 64

type SearchKPIs struct {
	relaxationAttempts int // store the attempt for relaxed edges
	relaxedEdges       int // number of relaxed edges
	numSettledNodes    int // number of settled nodes
}

type SearchOptions struct {
	useHeuristic       bool // flag indicating if the heuristic (remaining distance) should be used. Without it, the search is plain Dijkstra
	maxNumSettledNodes int  // maximum number of settled nodes before search is terminated
}

// AStar finds least-cost paths with the euclidean distance as edge cost and heuristic.
// The search state is owned by the AStar value, so concurrent searches need separate values.
// Implements the Navigator Interface.
type AStar struct {
	g        graph.Graph
	state    SearchState
	frontier *Frontier

	origin      graph.NodeId // the origin of the current search
	destination graph.NodeId // the destination of the current search

	searchOptions SearchOptions
	searchKPIs    SearchKPIs

	debugLevel int // debug level for logging purpose
}

// Create a new AStar instance with the given graph g
func NewAStar(g graph.Graph) *AStar {
	options := SearchOptions{useHeuristic: true, maxNumSettledNodes: math.MaxInt}
	d := &AStar{g: g, searchOptions: options, origin: -1, destination: -1}
	d.frontier = NewFrontier(&d.state)
	return d
}

// Compute the shortest path from the origin to the destination.
// It returns the length of the found path.
// If no path exists, it returns -1 and no error.
// Invalid ids, a cancelled context or an exhausted settle budget are returned as error
func (d *AStar) ComputeShortestPath(ctx context.Context, origin, destination graph.NodeId) (float64, error) {
	if err := validateRequest(d.g, origin, destination); err != nil {
		return -1, err
	}

	if d.debugLevel >= 1 {
		log.Printf("New search: %v -> %v\n", origin, destination)
	}

	d.initializeSearch(origin, destination)

	if origin == destination {
		d.settleNode(origin)
		if d.debugLevel >= 1 {
			log.Printf("Origin is destination, distance: 0\n")
		}
		return 0, nil
	}

	if d.g.IsObstacle(origin) {
		if d.debugLevel >= 1 {
			log.Printf("Origin %v is an obstacle, no path found\n", origin)
		}
		return -1, nil
	}

	d.frontier.Insert(origin, d.state.priority[origin])

	for {
		if d.searchKPIs.numSettledNodes%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return -1, err
			}
		}

		currentNode, ok := d.frontier.ExtractMin()
		if !ok {
			// no valid path found
			if d.debugLevel >= 1 {
				log.Printf("Finished search, no path found\n")
			}
			return -1, nil
		}

		if d.debugLevel >= 2 {
			log.Printf("Settling node %v, distance %v, priority %v\n", currentNode, d.state.localCost[currentNode], d.state.priority[currentNode])
		}
		d.settleNode(currentNode)

		if currentNode == destination {
			if d.debugLevel >= 1 {
				log.Printf("Found path %v -> %v with distance %v\n", origin, destination, d.state.localCost[destination])
			}
			return d.state.localCost[destination], nil
		}

		d.relaxEdges(currentNode)
		if d.debugLevel >= 4 {
			log.Printf("Frontier:\n%v", d.frontier)
		}

		if d.searchKPIs.numSettledNodes >= d.searchOptions.maxNumSettledNodes {
			if d.debugLevel >= 1 {
				log.Printf("Exceeded limits - max settled nodes: %v, current settled nodes: %v\n", d.searchOptions.maxNumSettledNodes, d.searchKPIs.numSettledNodes)
			}
			return -1, ErrSearchLimit
		}
	}
}

// Get the path of a previous computation. This contains the nodeIds which lie on the path from source to destination.
// The path is empty if the destination was not reached from the origin
func (d *AStar) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	return collectPath(&d.state, origin, destination)
}

// Walk lazily from the destination back to the origin of the previous computation
func (d *AStar) Backtrack(destination graph.NodeId) iter.Seq[graph.NodeId] {
	return d.state.Backtrack(destination)
}

// Returns the search space of a previous computation. This contains all nodes which were settled.
func (d *AStar) GetSearchSpace() []graph.NodeId {
	searchSpace := make([]graph.NodeId, 0, d.searchKPIs.numSettledNodes)
	for nodeId, visited := range d.state.visited {
		if visited {
			searchSpace = append(searchSpace, nodeId)
		}
	}
	return searchSpace
}

// Access to the per-node fields of the previous computation
func (d *AStar) State() *SearchState { return &d.state }

// Initialize a new search
// This resets the search state and the frontier (and all other leftovers of a previous search)
func (d *AStar) initializeSearch(origin, destination graph.NodeId) {
	if d.debugLevel >= 2 {
		log.Printf("Initialize new search, origin: %v\n", origin)
	}

	d.origin = origin
	d.destination = destination

	d.state.Reset(d.g.NodeCount())
	d.state.origin = origin
	d.frontier.Reset()
	d.searchKPIs = SearchKPIs{}

	d.state.localCost[origin] = 0
	d.state.priority[origin] = d.heuristic(origin)
}

// Settle the given node
func (d *AStar) settleNode(nodeId graph.NodeId) {
	d.searchKPIs.numSettledNodes++
	d.state.visited[nodeId] = true
}

// Relax the edges of the given node and add the improved neighbors to the frontier
func (d *AStar) relaxEdges(nodeId graph.NodeId) {
	for _, successor := range d.g.GetNeighbors(nodeId) {
		d.searchKPIs.relaxationAttempts++

		if d.g.IsObstacle(successor) || d.state.visited[successor] {
			continue
		}

		cost := d.state.localCost[nodeId] + graph.Distance(d.g, nodeId, successor)
		if cost < d.state.localCost[successor] {
			if d.debugLevel >= 3 {
				log.Printf("Relax Edge %v -> %v, distance %v\n", nodeId, successor, cost)
			}
			d.state.parent[successor] = nodeId
			d.state.localCost[successor] = cost
			d.state.priority[successor] = cost + d.heuristic(successor)
			d.frontier.Insert(successor, d.state.priority[successor])
			d.searchKPIs.relaxedEdges++
		}
	}
}

// heuristic value from the node to the destination.
// Returns 0 if the heuristic is disabled
func (d *AStar) heuristic(nodeId graph.NodeId) float64 {
	if d.searchOptions.useHeuristic {
		return graph.Distance(d.g, nodeId, d.destination)
	}
	return 0
}

// Specify whether a heuristic for path finding (AStar) should be used
func (d *AStar) SetUseHeuristic(useHeuristic bool) {
	d.searchOptions.useHeuristic = useHeuristic
}

// Set the maximum number of nodes that can get settled before the search is terminated.
// Values below 1 remove the limit
func (d *AStar) SetMaxNumSettledNodes(maxNumSettledNodes int) {
	if maxNumSettledNodes < 1 {
		maxNumSettledNodes = math.MaxInt
	}
	d.searchOptions.maxNumSettledNodes = maxNumSettledNodes
}

// Returns the amount of priority queue/heap pops which were performed during the search (including stale entries)
func (d *AStar) GetPqPops() int { return d.frontier.Pops() }

// Get the number of pq pushes
func (d *AStar) GetPqUpdates() int { return d.frontier.Inserts() }

// Get the number of stale frontier entries which were discarded
func (d *AStar) GetStaleEntries() int { return d.frontier.Stale() }

// Get the number of relaxed edges
func (d *AStar) GetEdgeRelaxations() int { return d.searchKPIs.relaxedEdges }

// Get the number of attempted edge relaxations
func (d *AStar) GetRelaxationAttempts() int { return d.searchKPIs.relaxationAttempts }

// Get the number of settled nodes
func (d *AStar) GetSettledNodes() int { return d.searchKPIs.numSettledNodes }

// Get the used graph
func (d *AStar) GetGraph() graph.Graph { return d.g }

// Set the debug level to show different debug messages.
// If it is 0, no debug messages are printed
func (d *AStar) SetDebugLevel(level int) {
	d.debugLevel = level
}

// Materialize the path from origin to destination of the given state
func collectPath(state *SearchState, origin, destination graph.NodeId) []graph.NodeId {
	path := make([]graph.NodeId, 0)
	if origin != state.origin {
		return path
	}
	for nodeId := range state.Backtrack(destination) {
		path = append(path, nodeId)
	}
	// reverse path (to create the correct direction)
	slice.ReverseInPlace(path)
	return path
}
