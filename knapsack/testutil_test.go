// Package knapsack_test provides lightweight testing helpers shared across
// *_test.go files in this package: deterministic instance generators, a
// brute-force completion oracle and small assertion helpers.
package knapsack_test

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvknap/knapsack"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the base seed for generated instances.
	seedDet = int64(42)

	// maxSmallN is the largest instance size used for brute-force comparisons.
	maxSmallN = 15

	// epsBound absorbs float rounding in the fractional bound term.
	epsBound = 1e-9
)

// scenarioItems is the textbook instance: optimum 220 with {B, C} at capacity 50.
func scenarioItems() []knapsack.Item {
	return []knapsack.Item{
		{Name: "A", Profit: 60, Weight: 10},
		{Name: "B", Profit: 100, Weight: 20},
		{Name: "C", Profit: 120, Weight: 30},
	}
}

// randomItems returns n items with profits in [0, maxP] and weights in [1, maxW].
func randomItems(rng *rand.Rand, n int, maxP, maxW int64) []knapsack.Item {
	items := make([]knapsack.Item, n)
	var i int
	for i = 0; i < n; i++ {
		items[i] = knapsack.Item{
			Name:   "I" + strconv.Itoa(i),
			Profit: rng.Int63n(maxP + 1),
			Weight: 1 + rng.Int63n(maxW),
		}
	}

	return items
}

// bestCompletion returns the best profit obtainable by adding any subset of
// catalog items from..Len()-1 within the remaining capacity. Exponential; small n only.
func bestCompletion(cat knapsack.Catalog, from int, remaining int64) int64 {
	if from >= cat.Len() || remaining <= 0 {
		return 0
	}
	it := cat.At(from)
	skip := bestCompletion(cat, from+1, remaining)
	if it.Weight > remaining {
		return skip
	}
	take := it.Profit + bestCompletion(cat, from+1, remaining-it.Weight)
	if take > skip {
		return take
	}

	return skip
}

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// sumSelected totals profit and weight of items at the given input positions.
func sumSelected(items []knapsack.Item, idx []int) (profit, weight int64) {
	for _, i := range idx {
		profit += items[i].Profit
		weight += items[i].Weight
	}

	return profit, weight
}
