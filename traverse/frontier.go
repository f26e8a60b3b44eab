// File: frontier.go
// Role: Frontier containers: Queue (FIFO), Stack (LIFO), PriorityQueue (min-heap).
// Determinism:
//   - PriorityQueue breaks cost ties by node ID, then by Path.Compare.

package traverse

import (
	"container/heap"

	"github.com/katalvlaran/campusnav/core"
)

// Item is one frontier entry: a node, the path that reached it and the
// accumulated cost of that path.
type Item struct {
	Node string
	Path core.Path
	Cost float64
}

// Frontier is the container discipline of a search.
// Pop must only be called when Len() > 0.
type Frontier interface {
	Push(Item)
	Pop() Item
	Len() int
}

// Queue is a FIFO frontier.
type Queue struct {
	items []Item
	head  int
}

// NewQueue returns an empty queue with room for n items.
func NewQueue(n int) *Queue {
	return &Queue{items: make([]Item, 0, n)}
}

// Push appends it at the back.
func (q *Queue) Push(it Item) { q.items = append(q.items, it) }

// Pop removes the front item.
func (q *Queue) Pop() Item {
	it := q.items[q.head]
	q.items[q.head] = Item{}
	q.head++
	// reclaim the consumed prefix once it dominates the slice
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return it
}

// Len returns the number of queued items.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Stack is a LIFO frontier.
type Stack struct {
	items []Item
}

// NewStack returns an empty stack with room for n items.
func NewStack(n int) *Stack {
	return &Stack{items: make([]Item, 0, n)}
}

// Push places it on top.
func (s *Stack) Push(it Item) { s.items = append(s.items, it) }

// Pop removes the top item.
func (s *Stack) Pop() Item {
	n := len(s.items) - 1
	it := s.items[n]
	s.items[n] = Item{}
	s.items = s.items[:n]

	return it
}

// Len returns the number of stacked items.
func (s *Stack) Len() int { return len(s.items) }

// PriorityQueue is a min-heap frontier ordered by (Cost, Node, Path).
type PriorityQueue struct {
	h itemHeap
}

// NewPriorityQueue returns an empty priority queue with room for n items.
func NewPriorityQueue(n int) *PriorityQueue {
	return &PriorityQueue{h: make(itemHeap, 0, n)}
}

// Push inserts it.
func (pq *PriorityQueue) Push(it Item) { heap.Push(&pq.h, it) }

// Pop removes the minimum item.
func (pq *PriorityQueue) Pop() Item { return heap.Pop(&pq.h).(Item) }

// Len returns the number of items in the heap.
func (pq *PriorityQueue) Len() int { return pq.h.Len() }

// less orders items by cost, then node ID, then path.
func less(a, b Item) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.Node != b.Node {
		return a.Node < b.Node
	}

	return a.Path.Compare(b.Path) < 0
}

// itemHeap implements heap.Interface over Item values.
type itemHeap []Item

func (h itemHeap) Len() int           { return len(h) }
func (h itemHeap) Less(i, j int) bool { return less(h[i], h[j]) }
func (h itemHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = Item{}
	*h = old[:n-1]

	return it
}
