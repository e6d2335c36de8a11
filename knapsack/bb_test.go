// Package knapsack_test validates the best-first Branch-and-Bound driver (Solve).
// Focus:
//  1. Strict sentinels on malformed inputs (items, capacity, options).
//  2. Reference scenarios and boundaries (capacity 0, oversize item, empty input).
//  3. Optimality against Exhaustive on random instances (n <= 15).
//  4. Monotonic incumbent and termination within the iteration cap.
//  5. CAPPED termination is a result, never an error.
//  6. Determinism under identical options.
package knapsack_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/knapsack"
)

// ---------------------------
// 1) Strict sentinels tests.
// ---------------------------

func TestSolve_Errors_StrictSentinels(t *testing.T) {
	items := scenarioItems()

	_, err := knapsack.Solve(items, -1)
	mustErrIs(t, err, knapsack.ErrNegativeCapacity)

	_, err = knapsack.Solve(items, 50, knapsack.WithIterationCap(0))
	mustErrIs(t, err, knapsack.ErrBadIterationCap)

	_, err = knapsack.Solve(items, 50, knapsack.WithFrontierTieBreak(knapsack.FrontierTieBreak(7)))
	mustErrIs(t, err, knapsack.ErrUnknownTieBreak)

	bad := append(scenarioItems(), knapsack.Item{Name: "ghost", Profit: 5, Weight: 0})
	res, err := knapsack.Solve(bad, 50)
	mustErrIs(t, err, knapsack.ErrInvalidItem)
	assert.Empty(t, res.Selection, "no partial result on validation failure")

	cat, err := knapsack.Rank(items)
	require.NoError(t, err)
	_, err = knapsack.SolveCatalog(cat, -5)
	mustErrIs(t, err, knapsack.ErrNegativeCapacity)
}

// ---------------------------------------------
// 2) Scenarios and boundaries.
// ---------------------------------------------

func TestSolve_Scenario_ABC(t *testing.T) {
	res, err := knapsack.Solve(scenarioItems(), 50)
	require.NoError(t, err)

	assert.Equal(t, int64(220), res.Profit)
	assert.Equal(t, int64(50), res.Weight)
	assert.Equal(t, []string{"B", "C"}, res.Selection)
	assert.Equal(t, []int{1, 2}, res.Indices)
	assert.Equal(t, knapsack.StateExhausted, res.TerminatedBy)
	assert.True(t, res.Optimal)

	// Trace: root, +A, +A+B, -A, -A+B, then the -B child of +A is not better than 220.
	assert.Equal(t, knapsack.Stats{
		Iterations:       6,
		Inserted:         6,
		Pruned:           5,
		IncumbentUpdates: 3,
		MaxFrontier:      3,
	}, res.Stats)
}

func TestSolve_ZeroCapacity(t *testing.T) {
	res, err := knapsack.Solve(scenarioItems(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Profit)
	assert.Equal(t, int64(0), res.Weight)
	assert.Empty(t, res.Selection)
	assert.Equal(t, knapsack.StateExhausted, res.TerminatedBy)
}

func TestSolve_SingleOversizeItem(t *testing.T) {
	res, err := knapsack.Solve([]knapsack.Item{{Name: "anvil", Profit: 500, Weight: 99}}, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Profit)
	assert.Empty(t, res.Selection)
	assert.True(t, res.Optimal)
}

func TestSolve_NoItems(t *testing.T) {
	res, err := knapsack.Solve(nil, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Profit)
	assert.Empty(t, res.Selection)
	assert.Equal(t, knapsack.StateExhausted, res.TerminatedBy)
}

func TestSolve_EverythingFits(t *testing.T) {
	res, err := knapsack.Solve(scenarioItems(), 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(280), res.Profit)
	assert.Equal(t, []string{"A", "B", "C"}, res.Selection)
}

// ---------------------------------------------
// 3) Optimality against the exhaustive oracle.
// ---------------------------------------------

func TestSolve_OptimalVsExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	var trial int
	for trial = 0; trial < 200; trial++ {
		n := rng.Intn(maxSmallN + 1)
		items := randomItems(rng, n, 100, 40)
		var total int64
		for _, it := range items {
			total += it.Weight
		}
		capacity := rng.Int63n(total + 2)

		want, err := knapsack.Exhaustive(items, capacity)
		require.NoError(t, err)

		for _, tie := range []knapsack.FrontierTieBreak{knapsack.TieLIFO, knapsack.TieFIFO} {
			got, err := knapsack.Solve(items, capacity,
				knapsack.WithIterationCap(1<<20),
				knapsack.WithFrontierTieBreak(tie))
			require.NoError(t, err)
			require.Equal(t, knapsack.StateExhausted, got.TerminatedBy, "trial=%d", trial)
			require.Equal(t, want.Profit, got.Profit, "trial=%d n=%d cap=%d tie=%s", trial, n, capacity, tie)
			require.LessOrEqual(t, got.Weight, capacity)

			p, w := sumSelected(items, got.Indices)
			require.Equal(t, got.Profit, p)
			require.Equal(t, got.Weight, w)
			require.Len(t, got.Selection, len(got.Indices))
		}
	}
}

// ---------------------------------------------------
// 4) Monotonic incumbent and termination within cap.
// ---------------------------------------------------

func TestSolve_MonotonicIncumbent(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	items := randomItems(rng, maxSmallN, 100, 30)

	var (
		last    int64 = -1
		updates []int64
		iters   int
	)
	hooks := knapsack.Hooks{
		OnIteration: func(p knapsack.Progress) {
			iters++
			if p.Incumbent.Profit < last {
				t.Fatalf("incumbent decreased at iteration %d: %d < %d", p.Iteration, p.Incumbent.Profit, last)
			}
			last = p.Incumbent.Profit
		},
		OnIncumbent: func(_ int, inc knapsack.Incumbent) {
			updates = append(updates, inc.Profit)
		},
	}
	res, err := knapsack.Solve(items, 120, knapsack.WithHooks(hooks))
	require.NoError(t, err)

	assert.Equal(t, res.Stats.Iterations, iters)
	assert.Equal(t, res.Stats.IncumbentUpdates, len(updates))
	for i := 1; i < len(updates); i++ {
		assert.Greater(t, updates[i], updates[i-1], "incumbent updates must be strict improvements")
	}
	if len(updates) > 0 {
		assert.Equal(t, res.Profit, updates[len(updates)-1])
	}
}

func TestSolve_TerminatesWithinCap(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 2))
	items := randomItems(rng, 40, 1000, 100)
	opt, err := knapsack.Solve(items, 800, knapsack.WithIterationCap(1<<22))
	require.NoError(t, err)

	for _, limit := range []int{1, 2, 3, 5, 8, 13, 21, 34, 55} {
		res, err := knapsack.Solve(items, 800, knapsack.WithIterationCap(limit))
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Stats.Iterations, limit)
		assert.LessOrEqual(t, res.Profit, opt.Profit)
		assert.LessOrEqual(t, res.Weight, int64(800))
	}
}

// ---------------------------------------------
// 5) CAPPED is a result, not an error.
// ---------------------------------------------

func TestSolve_CapOne(t *testing.T) {
	res, err := knapsack.Solve(scenarioItems(), 50, knapsack.WithIterationCap(1))
	require.NoError(t, err)
	assert.Equal(t, knapsack.StateCapped, res.TerminatedBy)
	assert.False(t, res.Optimal)
	assert.Equal(t, 1, res.Stats.Iterations)
	assert.LessOrEqual(t, res.Profit, int64(220))
	// The include child of the root (A) is the only incumbent after one iteration.
	assert.Equal(t, int64(60), res.Profit)
	assert.Equal(t, []string{"A"}, res.Selection)
	assert.Equal(t, "CAPPED", res.TerminatedBy.String())
}

// ---------------------------------------------
// 6) Determinism and hooks.
// ---------------------------------------------

func TestSolve_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 3))
	items := randomItems(rng, 12, 20, 10) // small ranges → many equal bounds

	trace := func() []float64 {
		var seq []float64
		hooks := knapsack.Hooks{OnExtract: func(_ int, n knapsack.Node) {
			seq = append(seq, n.Bound(), float64(n.Level()), float64(n.Profit()))
		}}
		_, err := knapsack.Solve(items, 30, knapsack.WithHooks(hooks))
		require.NoError(t, err)

		return seq
	}

	first := trace()
	Repeat(t, 3, func(t *testing.T) {
		assert.Equal(t, first, trace())
	})
}

func TestSolve_ChainHooksAndFinish(t *testing.T) {
	var (
		extracts, inserts, prunes int
		finished                  []knapsack.Result
		branches                  = map[knapsack.Branch]int{}
	)
	a := knapsack.Hooks{
		OnExtract: func(int, knapsack.Node) { extracts++ },
		OnInsert:  func(_ knapsack.Node, b knapsack.Branch) { inserts++; branches[b]++ },
	}
	b := knapsack.Hooks{
		OnPrune:  func(knapsack.Node, knapsack.Branch) { prunes++ },
		OnFinish: func(r knapsack.Result) { finished = append(finished, r) },
	}

	res, err := knapsack.Solve(scenarioItems(), 50, knapsack.WithHooks(knapsack.ChainHooks(a, b)))
	require.NoError(t, err)

	assert.Equal(t, res.Stats.Iterations, extracts)
	assert.Equal(t, res.Stats.Inserted, inserts)
	assert.Equal(t, res.Stats.Pruned, prunes)
	assert.Equal(t, 1, branches[knapsack.BranchRoot])
	require.Len(t, finished, 1)
	assert.Equal(t, res, finished[0])
}

func TestSolveCatalog_UsesGivenOrder(t *testing.T) {
	items := []knapsack.Item{
		{Name: "y", Profit: 10, Weight: 5},
		{Name: "x", Profit: 10, Weight: 5},
	}
	cat, err := knapsack.RankWith(items, knapsack.TieByName)
	require.NoError(t, err)

	res, err := knapsack.SolveCatalog(cat, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, res.Selection)
	assert.Equal(t, []int{1}, res.Indices)

	res, err = knapsack.Solve(items, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, res.Selection)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "RUNNING", knapsack.StateRunning.String())
	assert.Equal(t, "EXHAUSTED", knapsack.StateExhausted.String())
	assert.Equal(t, "DONE", knapsack.StateDone.String())
	assert.Equal(t, "State(9)", knapsack.State(9).String())
	assert.Equal(t, "include", knapsack.BranchInclude.String())
}

// -------------------------------------------------
// 7) Weight and profit sums near the int64 limit.
// -------------------------------------------------

func hugeItems() []knapsack.Item {
	return []knapsack.Item{
		{Name: "x", Profit: 1, Weight: 1 << 62},
		{Name: "y", Profit: 1, Weight: 1 << 62},
	}
}

func TestSolve_HugeWeightsStayFeasible(t *testing.T) {
	res, err := knapsack.Solve(hugeItems(), 1<<62+5)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Profit)
	assert.Equal(t, int64(1<<62), res.Weight)
	assert.Equal(t, []string{"x"}, res.Selection)
	assert.True(t, res.Optimal)
}

func TestSolve_MaxCapacityOverflow(t *testing.T) {
	items := []knapsack.Item{
		{Name: "x", Profit: 1, Weight: math.MaxInt64 - 1},
		{Name: "y", Profit: 1, Weight: 2},
	}
	res, err := knapsack.Solve(items, math.MaxInt64)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Profit)
	assert.Equal(t, []string{"y"}, res.Selection)
	_, w := sumSelected(items, res.Indices)
	assert.Equal(t, int64(2), w)
	assert.Equal(t, int64(2), res.Weight)

	ex, err := knapsack.Exhaustive(items, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, res.Profit, ex.Profit)
	assert.Equal(t, res.Selection, ex.Selection)
}

func TestSolve_ProfitOverflowRejected(t *testing.T) {
	items := []knapsack.Item{
		{Name: "x", Profit: math.MaxInt64, Weight: 1},
		{Name: "y", Profit: 1, Weight: 1},
	}
	_, err := knapsack.Solve(items, 10)
	mustErrIs(t, err, knapsack.ErrInvalidItem)

	_, err = knapsack.Exhaustive(items, 10)
	mustErrIs(t, err, knapsack.ErrInvalidItem)
}
