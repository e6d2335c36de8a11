// Package knapsack solves the 0-1 knapsack problem with a best-first
// branch-and-bound search.
//
// Given items with (profit, weight) and a capacity, the solver selects the
// subset of items that maximizes total profit while keeping total weight
// within capacity.
//
// What:
//
//   - Rank / RankWith: validate items and build an immutable Catalog sorted by
//     descending profit/weight ratio.
//   - Bound: fractional-relaxation upper bound for a Node (never under-estimates
//     the best completion reachable from the node). Only a node strictly over
//     capacity bounds to 0; a node exactly at capacity bounds to its profit,
//     so bound >= profit holds for every feasible node.
//   - Frontier: live nodes ordered by non-increasing bound, LIFO among equal
//     bounds (container/heap, O(log n) insert and extract).
//   - Solve / SolveCatalog: the search driver. Extracts the best-bound node,
//     derives its exclude/include children, updates the incumbent and
//     re-inserts promising children until the frontier is empty, the best
//     bound cannot beat the incumbent, or the iteration cap is reached.
//   - Exhaustive: brute-force reference solver for small instances.
//
// Termination:
//
//   - StateExhausted: the frontier is empty or its best bound is not better than
//     the incumbent. The result is optimal.
//   - StateCapped: the iteration cap was reached first. The result is a valid
//     selection but not guaranteed optimal. This is reported, never returned
//     as an error.
//
// Observability:
//
//	The search exposes Hooks (OnExtract, OnInsert, OnPrune, OnIncumbent,
//	OnIteration, OnFinish). Hooks are pure observers: the search never depends
//	on them being set, and they cannot alter its course. See package observe
//	for slog and Prometheus subscribers.
//
// Complexity:
//
//   - Rank:   O(n log n)
//   - Bound:  O(n) per node
//   - Solve:  worst case exponential in n, bounded by the iteration cap;
//     O(n + log F) per iteration where F is the frontier size.
//   - Memory: O(F · n/64) words for node selections.
//
// Errors (sentinel):
//
//   - ErrInvalidItem       an item has non-positive weight or negative profit.
//   - ErrNegativeCapacity  capacity < 0.
//   - ErrBadIterationCap   iteration cap <= 0.
//   - ErrUnknownTieBreak   an unknown tie-break policy was configured.
//   - ErrTooManyItems      Exhaustive was called with too many items.
//   - ErrEmptyFrontier     ExtractBest on an empty Frontier (never surfaces from Solve).
//
// Example:
//
//	items := []knapsack.Item{
//	    {Name: "A", Profit: 60, Weight: 10},
//	    {Name: "B", Profit: 100, Weight: 20},
//	    {Name: "C", Profit: 120, Weight: 30},
//	}
//	res, err := knapsack.Solve(items, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Profit, res.Selection) // 220 [B C]
//
// Thread safety:
//
//	A single Solve call is synchronous and owns all of its state. Independent
//	Solve calls may run concurrently; hooks shared between them must be safe
//	for concurrent use.
package knapsack
