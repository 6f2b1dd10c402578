package queue

import (
	"container/heap"
	"strings"
)

type MinHeap[T Priorizable] struct {
	Queue PriorityQueue // hold the priority queue
}

func NewMinHeap[T Priorizable](items []T) *MinHeap[T] {
	h := &MinHeap[T]{}
	h.Queue = make(PriorityQueue, len(items))
	for i, item := range items {
		h.Queue[i] = item
		item.SetIndex(i)
	}
	heap.Init(&h.Queue)
	return h
}

type Priorizable interface {
	Priority() float64
	Sequence() int // insertion order, used to break ties between equal priorities
	Index() int
	SetIndex(index int)
	String() string
}

// Implements heap.Interface.
// Items with equal priority are ordered by their sequence (FIFO)
type PriorityQueue []Priorizable

func (q PriorityQueue) Len() int { return len(q) }
func (q PriorityQueue) Less(i, j int) bool {
	if q[i].Priority() == q[j].Priority() {
		return q[i].Sequence() < q[j].Sequence()
	}
	return q[i].Priority() < q[j].Priority()
}
func (q PriorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].SetIndex(i)
	q[j].SetIndex(j)
}
func (q *PriorityQueue) Push(item any) {
	n := len(*q)
	pqItem := item.(Priorizable)
	pqItem.SetIndex(n)
	*q = append(*q, pqItem)
}
func (q *PriorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.SetIndex(-1) // for safety
	*q = old[:n-1]
	return item
}

func (h *MinHeap[T]) Len() int    { return h.Queue.Len() }
func (h *MinHeap[T]) Push(item T) { heap.Push(&h.Queue, item) }
func (h *MinHeap[T]) Pop() T      { return heap.Pop(&h.Queue).(T) }

// Item at the given position of the heap array, index 0 is the minimum
func (h *MinHeap[T]) PeekAt(index int) T {
	if index >= h.Len() {
		panic("index out of bounds")
	}
	return h.Queue[index].(T)
}

// Drop all items but keep the allocated storage
func (h *MinHeap[T]) Clear() {
	for i := range h.Queue {
		h.Queue[i].SetIndex(-1)
		h.Queue[i] = nil
	}
	h.Queue = h.Queue[:0]
}

func (h *MinHeap[T]) String() string {
	var sb strings.Builder
	for i := 0; i < h.Len(); i++ {
		item := h.PeekAt(i)
		sb.WriteString(item.String())
	}
	return sb.String()
}
