package knapsack

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Node is a candidate in the state-space tree: the include/exclude decisions
// for catalog items 0..Level, their totals, and an upper bound on the profit
// reachable from here.
//
// Nodes are values. The selection set is never mutated after construction:
// an exclude child shares its parent's set, an include child clones it first,
// so copying a Node never aliases mutable state.
type Node struct {
	selection *bitset.BitSet // included catalog indices; nil means empty
	profit    int64
	weight    int64
	level     int // index of the last considered catalog item; -1 at the root
	bound     float64
	overflow  bool // true weight exceeds math.MaxInt64; weight is saturated
}

// NewRoot returns the root node: nothing considered, nothing selected.
// Its bound is 0 until computed with Bound.
func NewRoot() Node {
	return Node{level: -1}
}

// Profit returns the total profit of the included items.
func (nd Node) Profit() int64 { return nd.profit }

// Weight returns the total weight of the included items, saturated at
// math.MaxInt64 when the true sum does not fit.
func (nd Node) Weight() int64 { return nd.weight }

// Level returns the catalog index of the last considered item (-1 at the root).
func (nd Node) Level() int { return nd.level }

// Bound returns the bound last assigned by the search driver.
func (nd Node) Bound() float64 { return nd.bound }

// Size returns the number of included items.
func (nd Node) Size() int {
	if nd.selection == nil {
		return 0
	}

	return int(nd.selection.Count())
}

// Included reports whether catalog item i is included.
func (nd Node) Included(i int) bool {
	if nd.selection == nil || i < 0 {
		return false
	}

	return nd.selection.Test(uint(i))
}

// Selection returns the included catalog indices in ascending order.
func (nd Node) Selection() []int {
	out := make([]int, 0, nd.Size())
	if nd.selection == nil {
		return out
	}
	for i, ok := nd.selection.NextSet(0); ok; i, ok = nd.selection.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Child derives the node for catalog item Level()+1, either taking the item
// (include) or leaving it out. It returns false when no next item exists.
//
// The child's bound is reset to 0; callers must recompute it with Bound
// before comparing or inserting the child.
func (nd Node) Child(cat Catalog, include bool) (Node, bool) {
	next := nd.level + 1
	if next >= cat.Len() {
		return Node{}, false
	}

	child := Node{
		selection: nd.selection,
		profit:    nd.profit,
		weight:    nd.weight,
		level:     next,
		overflow:  nd.overflow,
	}
	if include {
		it := cat.At(next)
		if nd.selection == nil {
			child.selection = bitset.New(uint(cat.Len()))
		} else {
			child.selection = nd.selection.Clone()
		}
		child.selection.Set(uint(next))
		child.profit += it.Profit
		if nd.overflow || it.Weight > math.MaxInt64-nd.weight {
			child.weight, child.overflow = math.MaxInt64, true
		} else {
			child.weight += it.Weight
		}
	}

	return child, true
}

// feasible reports whether the node's selection fits in capacity.
func (nd Node) feasible(capacity int64) bool {
	return !nd.overflow && nd.weight <= capacity
}

// withBound returns a copy of nd carrying bound b.
func (nd Node) withBound(b float64) Node {
	nd.bound = b

	return nd
}
