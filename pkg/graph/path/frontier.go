package path

import (
	"fmt"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
	"github.com/natevvv/grid-pathfinder/pkg/queue"
)

// implements queue.Priorizable
type FrontierItem struct {
	nodeId   graph.NodeId // node id of this item in the graph
	priority float64      // priority of the node when it was inserted
	sequence int          // insertion order, ties are extracted first in first out
	index    int          // internal usage
}

func NewFrontierItem(nodeId graph.NodeId, priority float64, sequence int) *FrontierItem {
	return &FrontierItem{nodeId: nodeId, priority: priority, sequence: sequence, index: -1}
}

func (item *FrontierItem) NodeId() graph.NodeId { return item.nodeId }
func (item *FrontierItem) Priority() float64    { return item.priority }
func (item *FrontierItem) Sequence() int        { return item.sequence }
func (item *FrontierItem) Index() int           { return item.index }
func (item *FrontierItem) SetIndex(index int)   { item.index = index }
func (item *FrontierItem) String() string {
	return fmt.Sprintf("%v: %v, %v\n", item.index, item.nodeId, item.priority)
}

// Frontier is the open set of a search.
// A node is inserted again every time its priority drops, the older entries
// become stale and are dropped when they reach the top (lazy deletion).
type Frontier struct {
	minHeap  queue.MinHeap[*FrontierItem]
	state    *SearchState // decides which entries are stale
	sequence int
	inserts  int
	pops     int
	stale    int
}

func NewFrontier(state *SearchState) *Frontier {
	return &Frontier{minHeap: *queue.NewMinHeap[*FrontierItem](nil), state: state}
}

// Remove all entries and reset the counters
func (f *Frontier) Reset() {
	f.minHeap.Clear()
	f.sequence = 0
	f.inserts = 0
	f.pops = 0
	f.stale = 0
}

// Insert the node with the given priority. Duplicates are allowed
func (f *Frontier) Insert(nodeId graph.NodeId, priority float64) {
	f.minHeap.Push(NewFrontierItem(nodeId, priority, f.sequence))
	f.sequence++
	f.inserts++
}

// Remove and return the unvisited node with the minimum priority.
// Entries of visited nodes are discarded.
// Returns false if no unvisited entry is left
func (f *Frontier) ExtractMin() (graph.NodeId, bool) {
	for f.minHeap.Len() > 0 {
		item := f.minHeap.Pop()
		f.pops++
		if f.state.Visited(item.nodeId) {
			f.stale++
			continue
		}
		return item.nodeId, true
	}
	return -1, false
}

// Number of entries, including stale ones
func (f *Frontier) Len() int { return f.minHeap.Len() }

// Entries in heap order
func (f *Frontier) String() string { return f.minHeap.String() }

func (f *Frontier) Inserts() int { return f.inserts }
func (f *Frontier) Pops() int    { return f.pops }
func (f *Frontier) Stale() int   { return f.stale }
