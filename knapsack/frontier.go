// Package knapsack - priority frontier of live candidate nodes.
//
// The frontier is conceptually a list sorted by non-increasing bound where a
// new node is placed immediately before the first existing node whose bound
// is not strictly greater. Among equal bounds the newest node therefore comes
// first (LIFO). That list is equivalent to a total order on
// (bound desc, insertion sequence desc), which a binary heap reproduces with
// O(log n) Insert/ExtractBest and the exact same extraction sequence.
package knapsack

import "container/heap"

// frontierEntry pairs a node with its insertion sequence number.
type frontierEntry struct {
	node Node
	seq  uint64
}

// entryHeap is a max-heap of entries ordered by bound, then by seq per policy.
type entryHeap struct {
	items []frontierEntry
	fifo  bool
}

// Compile time check to ensure entryHeap satisfies the heap interface.
var _ heap.Interface = (*entryHeap)(nil)

func (h *entryHeap) Len() int { return len(h.items) }

func (h *entryHeap) Less(i, j int) bool {
	a, b := &h.items[i], &h.items[j]
	if a.node.bound != b.node.bound {
		return a.node.bound > b.node.bound
	}
	if h.fifo {
		return a.seq < b.seq
	}

	return a.seq > b.seq
}

func (h *entryHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap) Push(x any) { h.items = append(h.items, x.(frontierEntry)) }

func (h *entryHeap) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	old[n-1] = frontierEntry{} // drop the selection reference
	h.items = old[:n-1]

	return e
}

// Frontier holds live nodes ordered by non-increasing bound.
// It is not safe for concurrent use; the search driver owns it exclusively.
type Frontier struct {
	h   entryHeap
	seq uint64
}

// NewFrontier returns an empty frontier with the given tie-break among equal bounds.
func NewFrontier(tie FrontierTieBreak) *Frontier {
	return &Frontier{h: entryHeap{fifo: tie == TieFIFO}}
}

// Insert adds nd using nd.Bound() as its priority.
//
// Complexity: O(log n).
func (f *Frontier) Insert(nd Node) {
	f.seq++
	heap.Push(&f.h, frontierEntry{node: nd, seq: f.seq})
}

// ExtractBest removes and returns the node with the highest bound.
// Returns ErrEmptyFrontier if the frontier is empty.
//
// Complexity: O(log n).
func (f *Frontier) ExtractBest() (Node, error) {
	if f.h.Len() == 0 {
		return Node{}, ErrEmptyFrontier
	}
	e := heap.Pop(&f.h).(frontierEntry)

	return e.node, nil
}

// Peek returns the node ExtractBest would return, without removing it.
func (f *Frontier) Peek() (Node, bool) {
	if f.h.Len() == 0 {
		return Node{}, false
	}

	return f.h.items[0].node, true
}

// IsEmpty reports whether the frontier holds no nodes.
func (f *Frontier) IsEmpty() bool { return f.h.Len() == 0 }

// Len returns the number of live nodes.
func (f *Frontier) Len() int { return f.h.Len() }
