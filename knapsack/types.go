package knapsack

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the knapsack package.
var (
	// ErrInvalidItem indicates an item with non-positive weight or negative profit.
	// Returned errors wrap it with the offending item's position and name.
	ErrInvalidItem = errors.New("knapsack: invalid item")

	// ErrEmptyFrontier is returned by Frontier.ExtractBest on an empty frontier.
	// Solve checks emptiness itself, so seeing it from Solve indicates a bug.
	ErrEmptyFrontier = errors.New("knapsack: frontier is empty")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrBadIterationCap indicates a non-positive iteration cap.
	ErrBadIterationCap = errors.New("knapsack: iteration cap must be positive")

	// ErrUnknownTieBreak indicates an unknown ratio or frontier tie-break policy.
	ErrUnknownTieBreak = errors.New("knapsack: unknown tie-break policy")

	// ErrTooManyItems is returned by Exhaustive when the instance is too large to enumerate.
	ErrTooManyItems = errors.New("knapsack: too many items for exhaustive search")
)

// DefaultIterationCap bounds the number of search iterations when no cap is configured.
const DefaultIterationCap = 10000

// MaxExhaustiveItems is the largest instance Exhaustive accepts (2^24 subsets).
const MaxExhaustiveItems = 24

// Item is a candidate for the knapsack. Items are plain values and never mutated.
type Item struct {
	Name   string // identifier reported in Result.Selection
	Profit int64  // must be >= 0
	Weight int64  // must be > 0
}

// Ratio returns Profit/Weight, or 0 when Weight is 0.
// It is used only to rank items and to compute the fractional bound term.
func (it Item) Ratio() float64 {
	if it.Weight == 0 {
		return 0
	}

	return float64(it.Profit) / float64(it.Weight)
}

// String renders the item as "name(profit/weight)".
func (it Item) String() string {
	return fmt.Sprintf("%s(%d/%d)", it.Name, it.Profit, it.Weight)
}

// State is the search driver's lifecycle state.
type State int

const (
	// StateRunning: the main loop is active.
	StateRunning State = iota
	// StateExhausted: the frontier is empty or cannot beat the incumbent; the result is optimal.
	StateExhausted
	// StateCapped: the iteration cap was hit; the result is valid but not guaranteed optimal.
	StateCapped
	// StateDone: the driver returned its result.
	StateDone
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateExhausted:
		return "EXHAUSTED"
	case StateCapped:
		return "CAPPED"
	case StateDone:
		return "DONE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Branch tells which derivation produced a node.
type Branch int

const (
	BranchRoot    Branch = iota // the root node
	BranchExclude               // next item left out
	BranchInclude               // next item taken
)

// String implements fmt.Stringer.
func (b Branch) String() string {
	switch b {
	case BranchRoot:
		return "root"
	case BranchExclude:
		return "exclude"
	case BranchInclude:
		return "include"
	default:
		return fmt.Sprintf("Branch(%d)", int(b))
	}
}

// Incumbent is the best feasible selection found so far.
// Selection holds catalog indices in ascending (rank) order.
type Incumbent struct {
	Profit    int64
	Weight    int64
	Selection []int
}

// Stats collects counters for a single search.
type Stats struct {
	Iterations       int // loop iterations performed (each extracts one node)
	Inserted         int // nodes inserted into the frontier, root included
	Pruned           int // children discarded because their bound could not beat the incumbent
	IncumbentUpdates int // times the incumbent improved
	MaxFrontier      int // largest frontier size observed
}

// Result is the outcome of a search.
type Result struct {
	// Profit and Weight are the totals of the selected items.
	Profit int64
	Weight int64

	// Selection lists the selected item names in catalog rank order.
	Selection []string

	// Indices lists the positions of the selected items in the caller's input
	// slice, in the same order as Selection.
	Indices []int

	// TerminatedBy is StateExhausted or StateCapped.
	TerminatedBy State

	// Optimal is true when TerminatedBy == StateExhausted.
	Optimal bool

	Stats Stats
}

// Progress is the snapshot passed to Hooks.OnIteration after every iteration.
type Progress struct {
	Iteration   int
	FrontierLen int
	Incumbent   Incumbent
	State       State
}

// Hooks are optional observers of the search. Nil hooks are skipped.
// Hooks must not retain or modify the slices they receive.
type Hooks struct {
	// OnExtract is invoked after a node is extracted from the frontier.
	OnExtract func(iter int, n Node)

	// OnInsert is invoked after a node is inserted into the frontier.
	OnInsert func(n Node, b Branch)

	// OnPrune is invoked when a freshly bounded child is discarded.
	OnPrune func(n Node, b Branch)

	// OnIncumbent is invoked every time the incumbent improves.
	OnIncumbent func(iter int, inc Incumbent)

	// OnIteration is invoked at the end of every loop iteration.
	OnIteration func(p Progress)

	// OnFinish is invoked once with the final result.
	OnFinish func(r Result)
}

// ChainHooks fans every event out to all given hooks in order.
func ChainHooks(hs ...Hooks) Hooks {
	var out Hooks
	out.OnExtract = func(iter int, n Node) {
		for _, h := range hs {
			if h.OnExtract != nil {
				h.OnExtract(iter, n)
			}
		}
	}
	out.OnInsert = func(n Node, b Branch) {
		for _, h := range hs {
			if h.OnInsert != nil {
				h.OnInsert(n, b)
			}
		}
	}
	out.OnPrune = func(n Node, b Branch) {
		for _, h := range hs {
			if h.OnPrune != nil {
				h.OnPrune(n, b)
			}
		}
	}
	out.OnIncumbent = func(iter int, inc Incumbent) {
		for _, h := range hs {
			if h.OnIncumbent != nil {
				h.OnIncumbent(iter, inc)
			}
		}
	}
	out.OnIteration = func(p Progress) {
		for _, h := range hs {
			if h.OnIteration != nil {
				h.OnIteration(p)
			}
		}
	}
	out.OnFinish = func(r Result) {
		for _, h := range hs {
			if h.OnFinish != nil {
				h.OnFinish(r)
			}
		}
	}

	return out
}
