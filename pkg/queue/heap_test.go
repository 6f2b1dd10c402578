package queue

import (
	"container/heap"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	name     string
	priority float64
	sequence int
	index    int
}

func (i *testItem) Priority() float64  { return i.priority }
func (i *testItem) Sequence() int      { return i.sequence }
func (i *testItem) Index() int         { return i.index }
func (i *testItem) SetIndex(index int) { i.index = index }
func (i *testItem) String() string     { return fmt.Sprintf("%v: %v\n", i.name, i.priority) }

func TestMinHeapOrder(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	h.Push(&testItem{name: "c", priority: 3, sequence: 0})
	h.Push(&testItem{name: "a", priority: 1, sequence: 1})
	h.Push(&testItem{name: "b", priority: 2, sequence: 2})

	require.Equal(t, 3, h.Len())
	assert.Equal(t, "a", h.PeekAt(0).name)
	assert.Panics(t, func() { h.PeekAt(3) })

	var order []string
	for h.Len() > 0 {
		order = append(order, h.Pop().name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestMinHeapTieBreakFIFO(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	for i, name := range []string{"first", "second", "third", "fourth"} {
		h.Push(&testItem{name: name, priority: 4, sequence: i})
	}
	h.Push(&testItem{name: "cheap", priority: 1, sequence: 99})

	var order []string
	for h.Len() > 0 {
		order = append(order, h.Pop().name)
	}
	assert.Equal(t, []string{"cheap", "first", "second", "third", "fourth"}, order)
}

func TestMinHeapString(t *testing.T) {
	a := &testItem{name: "a", priority: 5, sequence: 0}
	b := &testItem{name: "b", priority: 1, sequence: 1}
	h := NewMinHeap([]*testItem{a, b})
	assert.Equal(t, "b: 1\na: 5\n", h.String())

	popped := h.Pop()
	assert.Equal(t, "b", popped.name)
	assert.Equal(t, -1, popped.Index())
	assert.Equal(t, 0, a.Index())
}

func TestMinHeapClear(t *testing.T) {
	a := &testItem{name: "a", priority: 1}
	h := NewMinHeap([]*testItem{a})
	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, -1, a.Index())
}

func TestQueueUpdate(t *testing.T) {
	pq := NewQueue(NewQueueItem(0, 0, -1))
	far := NewQueueItem(1, 10, 0)
	heap.Push(pq, far)
	heap.Push(pq, NewQueueItem(2, 5, 0))

	pq.Update(far, 1)

	var ids []int
	for pq.Len() > 0 {
		ids = append(ids, heap.Pop(pq).(*Item).ItemId)
	}
	assert.Equal(t, []int{0, 1, 2}, ids)
}
