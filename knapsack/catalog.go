package knapsack

import (
	"fmt"
	"sort"
)

// Catalog is an immutable, rank-ordered list of items (descending ratio).
// The order is fixed once built; the search only ever reads it.
type Catalog struct {
	items []Item // items[i] is the item at rank i
	orig  []int  // orig[i] is the position of items[i] in the caller's input
}

// Len returns the number of items.
func (c Catalog) Len() int { return len(c.items) }

// At returns the item at rank i. It panics if i is out of range, like a slice index.
func (c Catalog) At(i int) Item { return c.items[i] }

// Original returns the caller's input position of the item at rank i.
func (c Catalog) Original(i int) int { return c.orig[i] }

// Items returns a copy of the ranked items.
func (c Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)

	return out
}

// TotalWeight returns the sum of all item weights.
func (c Catalog) TotalWeight() int64 {
	var sum int64
	for _, it := range c.items {
		sum += it.Weight
	}

	return sum
}

// rankOrder implements sort.Interface over a permutation of input positions.
type rankOrder struct {
	perm  []int
	items []Item
	tie   RatioTieBreak
}

func (ro rankOrder) Len() int { return len(ro.perm) }
func (ro rankOrder) Less(i, j int) bool {
	a, b := ro.items[ro.perm[i]], ro.items[ro.perm[j]]
	ra, rb := a.Ratio(), b.Ratio()
	if ra != rb {
		return ra > rb
	}
	if ro.tie == TieByName && a.Name != b.Name {
		return a.Name < b.Name
	}

	// Stable sort keeps input order for the remaining ties.
	return false
}
func (ro rankOrder) Swap(i, j int) { ro.perm[i], ro.perm[j] = ro.perm[j], ro.perm[i] }

// Rank validates items and returns a Catalog sorted by descending ratio,
// keeping input order among equal ratios. The input slice is not modified.
//
// Errors: ErrInvalidItem (wrapped) for non-positive weight or negative profit.
//
// Complexity: O(n log n).
func Rank(items []Item) (Catalog, error) {
	return RankWith(items, TieInputOrder)
}

// RankWith is Rank with an explicit tie-break policy among equal ratios.
//
// Errors: ErrInvalidItem (wrapped), ErrUnknownTieBreak.
func RankWith(items []Item, tie RatioTieBreak) (Catalog, error) {
	if err := validateItems(items); err != nil {
		return Catalog{}, err
	}
	if tie != TieInputOrder && tie != TieByName {
		return Catalog{}, fmt.Errorf("%w: ratio tie-break %d", ErrUnknownTieBreak, int(tie))
	}

	var (
		n    = len(items)
		perm = make([]int, n)
		i    int
	)
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	sort.Stable(rankOrder{perm: perm, items: items, tie: tie})

	c := Catalog{
		items: make([]Item, n),
		orig:  perm,
	}
	for i = 0; i < n; i++ {
		c.items[i] = items[perm[i]]
	}

	return c, nil
}
