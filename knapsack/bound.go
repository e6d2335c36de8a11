// Package knapsack - fractional-relaxation upper bound.
//
// Relaxing the 0-1 constraint for a single item gives the classic Dantzig
// bound: take the remaining items whole in ratio order while they fit, then a
// fraction of the first item that does not. Because the catalog is sorted by
// descending ratio, no 0-1 completion of the node can collect more profit per
// unit of remaining capacity, so the bound never under-estimates.
package knapsack

// Bound returns an upper bound on the total profit reachable from nd or any
// of its descendants.
//
// Policy:
//  1. nd.Weight() > capacity → 0 (infeasible node, nothing is reachable).
//     A weight sum that overflows int64 is infeasible as well.
//  2. Otherwise start from nd's totals and walk the catalog from Level()+1,
//     adding whole items while the running weight stays within capacity.
//  3. At the first item that would overflow, add remaining·ratio and stop.
//  4. If the catalog runs out first, the bound is the exact accumulated profit.
//
// A node that exactly fills capacity gets bound == profit (the fractional
// term is zero), so bound >= profit holds for every feasible node.
//
// Complexity: O(n - Level()).
func Bound(nd Node, cat Catalog, capacity int64) float64 {
	if !nd.feasible(capacity) {
		return 0
	}

	var (
		profit = float64(nd.profit)
		weight = nd.weight
		n      = cat.Len()
		j      int
		it     Item
	)
	for j = nd.level + 1; j < n; j++ {
		it = cat.At(j)
		if it.Weight > capacity-weight {
			profit += float64(capacity-weight) * it.Ratio()

			return profit
		}
		weight += it.Weight
		profit += float64(it.Profit)
	}

	return profit
}
