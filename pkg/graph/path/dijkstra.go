package path

import (
	"container/heap"
	"context"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
	"github.com/natevvv/grid-pathfinder/pkg/queue"
	"github.com/natevvv/grid-pathfinder/pkg/slice"
)

// Dijkstra is a plain reference implementation with decrease-key updates.
// It shares the edge cost and the obstacle rules with AStar and is used to verify its results.
type Dijkstra struct {
	g                  graph.Graph
	dijkstraItems      []*queue.Item
	settled            []bool
	origin             graph.NodeId
	pqPops             int
	pqUpdates          int
	relaxationAttempts int
	relaxedEdges       int
	settledNodes       int
}

func NewDijkstra(g graph.Graph) *Dijkstra {
	return &Dijkstra{g: g, origin: -1}
}

func (d *Dijkstra) ComputeShortestPath(ctx context.Context, origin, destination graph.NodeId) (float64, error) {
	if err := validateRequest(d.g, origin, destination); err != nil {
		return -1, err
	}

	d.origin = origin
	d.dijkstraItems = make([]*queue.Item, d.g.NodeCount())
	d.settled = make([]bool, d.g.NodeCount())
	originItem := queue.NewQueueItem(origin, 0, -1)
	d.dijkstraItems[origin] = originItem

	d.pqPops = 0
	d.pqUpdates = 0
	d.relaxationAttempts = 0
	d.relaxedEdges = 0
	d.settledNodes = 0

	if origin != destination && d.g.IsObstacle(origin) {
		return -1, nil
	}

	pq := queue.NewQueue(d.dijkstraItems[origin])

	for pq.Len() > 0 {
		if d.pqPops%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return -1, err
			}
		}

		currentPqItem := heap.Pop(pq).(*queue.Item)
		currentNodeId := currentPqItem.ItemId
		d.pqPops++
		d.settled[currentNodeId] = true
		d.settledNodes++

		if currentNodeId == destination {
			break
		}

		for _, successor := range d.g.GetNeighbors(currentNodeId) {
			d.relaxationAttempts++

			if d.g.IsObstacle(successor) || d.settled[successor] {
				continue
			}

			newPriority := d.dijkstraItems[currentNodeId].Priority + graph.Distance(d.g, currentNodeId, successor)
			if d.dijkstraItems[successor] == nil {
				pqItem := queue.NewQueueItem(successor, newPriority, currentNodeId)
				d.dijkstraItems[successor] = pqItem
				heap.Push(pq, pqItem)
				d.pqUpdates++
				d.relaxedEdges++
			} else if newPriority < d.dijkstraItems[successor].Priority {
				pq.Update(d.dijkstraItems[successor], newPriority)
				d.pqUpdates++
				d.dijkstraItems[successor].Predecessor = currentNodeId
				d.relaxedEdges++
			}
		}
	}

	length := -1.0 // by default a non-existing path has length -1
	if d.settled[destination] {
		length = d.dijkstraItems[destination].Priority
	}
	return length, nil
}

func (d *Dijkstra) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	path := make([]graph.NodeId, 0) // by default, a non-existing path is an empty slice
	if origin != d.origin || destination < 0 || destination >= len(d.settled) || !d.settled[destination] {
		return path
	}
	for nodeId := destination; nodeId != -1; nodeId = d.dijkstraItems[nodeId].Predecessor {
		path = append(path, nodeId)
	}
	slice.ReverseInPlace(path)
	return path
}

// Cost of every settled node, -1 for the others
func (d *Dijkstra) GetDistances() []float64 {
	distances := make([]float64, len(d.settled))
	for nodeId := range distances {
		distances[nodeId] = -1
		if d.settled[nodeId] {
			distances[nodeId] = d.dijkstraItems[nodeId].Priority
		}
	}
	return distances
}

func (d *Dijkstra) GetSearchSpace() []graph.NodeId {
	searchSpace := make([]graph.NodeId, 0, d.settledNodes)
	for nodeId, settled := range d.settled {
		if settled {
			searchSpace = append(searchSpace, nodeId)
		}
	}
	return searchSpace
}

func (d *Dijkstra) GetPqPops() int             { return d.pqPops }
func (d *Dijkstra) GetPqUpdates() int          { return d.pqUpdates }
func (d *Dijkstra) GetEdgeRelaxations() int    { return d.relaxedEdges }
func (d *Dijkstra) GetRelaxationAttempts() int { return d.relaxationAttempts }
func (d *Dijkstra) GetSettledNodes() int       { return d.settledNodes }
func (d *Dijkstra) GetGraph() graph.Graph      { return d.g }
