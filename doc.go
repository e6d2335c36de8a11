// Package lvknap is an exact 0-1 knapsack solver built around a best-first
// branch-and-bound search.
//
// What is lvknap?
//
//	A small library plus a CLI that brings together:
//		• Item ranking by profit/weight ratio (immutable Catalog)
//		• Fractional-relaxation upper bounds
//		• A bound-ordered frontier with LIFO tie-breaking
//		• A capped search driver reporting EXHAUSTED or CAPPED
//		• A brute-force reference solver for small instances
//
// Under the hood, everything is organized under these subpackages:
//
//	knapsack/  : items, catalog, nodes, bound, frontier, search driver
//	loader/    : text and YAML instance files
//	observe/   : slog logging and Prometheus metrics driven by search hooks
//	config/    : YAML configuration with LVKNAP_* environment overrides
//	cmd/lvknap : command-line front end
//
// Quick example:
//
//	items := []knapsack.Item{
//	    {Name: "A", Profit: 60, Weight: 10},
//	    {Name: "B", Profit: 100, Weight: 20},
//	    {Name: "C", Profit: 120, Weight: 30},
//	}
//	res, _ := knapsack.Solve(items, 50)
//	fmt.Println(res.Profit, res.Selection) // 220 [B C]
//
// See examples/ for a runnable scenario.
package lvknap
