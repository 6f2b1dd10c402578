package path

import (
	"math"
	"testing"

	"github.com/natevvv/grid-pathfinder/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierOrder(t *testing.T) {
	var state SearchState
	state.Reset(6)
	f := NewFrontier(&state)
	f.Insert(0, 3.5)
	f.Insert(1, 1)
	f.Insert(2, 2)
	f.Insert(3, 1) // same priority as 1, inserted later
	f.Insert(4, 0.5)

	order := make([]graph.NodeId, 0)
	for {
		id, ok := f.ExtractMin()
		if !ok {
			break
		}
		order = append(order, id)
	}
	assert.Equal(t, []graph.NodeId{4, 1, 3, 2, 0}, order)
	assert.Equal(t, 5, f.Inserts())
	assert.Equal(t, 5, f.Pops())
	assert.Equal(t, 0, f.Stale())
}

func TestFrontierLazyDeletion(t *testing.T) {
	var state SearchState
	state.Reset(3)
	f := NewFrontier(&state)
	f.Insert(1, 5)
	f.Insert(2, 4)
	f.Insert(1, 2) // improved priority, the first entry becomes stale

	id, ok := f.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, graph.NodeId(1), id)
	state.visited[id] = true

	id, ok = f.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, graph.NodeId(2), id)
	state.visited[id] = true

	assert.Equal(t, 1, f.Len())
	_, ok = f.ExtractMin()
	assert.False(t, ok)
	assert.Equal(t, 1, f.Stale())
	assert.Equal(t, 3, f.Pops())
	assert.Equal(t, 0, f.Len())
}

func TestFrontierReset(t *testing.T) {
	var state SearchState
	state.Reset(2)
	f := NewFrontier(&state)
	f.Insert(0, 1)
	f.Insert(1, 1)
	assert.Equal(t, "0: 0, 1\n1: 1, 1\n", f.String())
	f.ExtractMin()
	assert.Equal(t, "0: 1, 1\n", f.String())
	f.Reset()
	assert.Empty(t, f.String())
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, 0, f.Inserts())
	assert.Equal(t, 0, f.Pops())
	_, ok := f.ExtractMin()
	assert.False(t, ok)
}

func TestSearchStateReset(t *testing.T) {
	var state SearchState
	state.Reset(4)
	require.Equal(t, 4, state.Size())
	for id := 0; id < 4; id++ {
		assert.False(t, state.Visited(id))
		assert.True(t, math.IsInf(state.LocalCost(id), 1))
		assert.True(t, math.IsInf(state.Priority(id), 1))
		assert.Equal(t, graph.NodeId(-1), state.Parent(id))
	}

	state.visited[2] = true
	state.localCost[2] = 7
	state.parent[2] = 1
	state.origin = 1
	state.Reset(4)
	assert.False(t, state.Visited(2))
	assert.True(t, math.IsInf(state.LocalCost(2), 1))
	assert.Equal(t, graph.NodeId(-1), state.Parent(2))

	state.Reset(8)
	assert.Equal(t, 8, state.Size())
	assert.Len(t, state.LocalCosts(), 8)
}

func TestSearchStateOutOfRange(t *testing.T) {
	var state SearchState
	state.Reset(2)
	assert.False(t, state.Visited(-1))
	assert.False(t, state.Visited(2))
	assert.True(t, math.IsInf(state.LocalCost(5), 1))
	assert.True(t, math.IsInf(state.Priority(-3), 1))
	assert.Equal(t, graph.NodeId(-1), state.Parent(9))
}

func TestSearchStateBacktrack(t *testing.T) {
	var state SearchState
	state.Reset(5)
	state.origin = 0
	state.parent[1] = 0
	state.parent[2] = 1
	state.parent[4] = 3 // 3 is not connected to the origin

	nodes := make([]graph.NodeId, 0)
	for id := range state.Backtrack(2) {
		nodes = append(nodes, id)
	}
	assert.Equal(t, []graph.NodeId{2, 1, 0}, nodes)

	for range state.Backtrack(4) {
		t.Error("unreached destination yields nodes")
	}
	for range state.Backtrack(10) {
		t.Error("out of range destination yields nodes")
	}

	parents := state.Parents()
	parents[2] = 4
	assert.Equal(t, graph.NodeId(1), state.Parent(2), "Parents returns a copy")
}
