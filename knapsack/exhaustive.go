package knapsack

import "fmt"

// Exhaustive enumerates every subset of items and returns the most profitable
// one within capacity. It is a reference solver for verification on small
// instances (n <= MaxExhaustiveItems).
//
// The result uses the same catalog order as Solve (ratio descending, input
// order among ties), so Selection and Indices are directly comparable. Among
// subsets with equal profit the one with the smallest bitmask over catalog
// ranks wins. TerminatedBy is always StateExhausted.
//
// Errors: ErrInvalidItem (wrapped), ErrNegativeCapacity, ErrTooManyItems.
//
// Complexity: O(n·2ⁿ) time, O(n) memory.
func Exhaustive(items []Item, capacity int64) (Result, error) {
	if err := validateCapacity(capacity); err != nil {
		return Result{}, err
	}
	if len(items) > MaxExhaustiveItems {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(items), MaxExhaustiveItems)
	}
	cat, err := Rank(items)
	if err != nil {
		return Result{}, err
	}

	var (
		n          = cat.Len()
		total      = uint64(1) << uint(n)
		mask, best uint64
		bestProfit int64
		bestWeight int64
		p, w       int64
		j          int
		fits       bool
	)
	for mask = 0; mask < total; mask++ {
		p, w, fits = 0, 0, true
		for j = 0; j < n && fits; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue
			}
			if cat.items[j].Weight > capacity-w {
				fits = false

				continue
			}
			w += cat.items[j].Weight
			p += cat.items[j].Profit
		}
		if fits && p > bestProfit {
			best, bestProfit, bestWeight = mask, p, w
		}
	}

	res := Result{
		Profit:       bestProfit,
		Weight:       bestWeight,
		Selection:    []string{},
		Indices:      []int{},
		TerminatedBy: StateExhausted,
		Optimal:      true,
		Stats:        Stats{Iterations: int(total)},
	}
	for j = 0; j < n; j++ {
		if best&(1<<uint(j)) != 0 {
			res.Selection = append(res.Selection, cat.items[j].Name)
			res.Indices = append(res.Indices, cat.orig[j])
		}
	}

	return res, nil
}
