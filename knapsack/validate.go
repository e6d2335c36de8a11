// Package knapsack - validation helpers shared by Rank, Solve and Exhaustive.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with positional context where it helps the caller.
package knapsack

import (
	"fmt"
	"math"
)

// validateItems checks every item before any search work starts.
//
// Contract:
//   - Weight must be > 0 (a zero weight has no ratio and breaks the bound).
//   - Profit must be >= 0.
//   - The total profit must fit in int64, so no selection's profit can overflow.
//
// Complexity: O(n).
func validateItems(items []Item) error {
	var (
		i     int
		it    Item
		total int64
	)
	for i, it = range items {
		if it.Weight <= 0 {
			return fmt.Errorf("%w: item %d %q has weight %d (must be > 0)", ErrInvalidItem, i, it.Name, it.Weight)
		}
		if it.Profit < 0 {
			return fmt.Errorf("%w: item %d %q has profit %d (must be >= 0)", ErrInvalidItem, i, it.Name, it.Profit)
		}
		if it.Profit > math.MaxInt64-total {
			return fmt.Errorf("%w: item %d %q pushes total profit past %d", ErrInvalidItem, i, it.Name, int64(math.MaxInt64))
		}
		total += it.Profit
	}

	return nil
}

// validateCapacity rejects negative capacities. Zero is valid and yields an empty selection.
func validateCapacity(capacity int64) error {
	if capacity < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCapacity, capacity)
	}

	return nil
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.IterationCap <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadIterationCap, opts.IterationCap)
	}
	switch opts.RatioTieBreak {
	case TieInputOrder, TieByName:
		// ok
	default:
		return fmt.Errorf("%w: ratio tie-break %d", ErrUnknownTieBreak, int(opts.RatioTieBreak))
	}
	switch opts.FrontierTieBreak {
	case TieLIFO, TieFIFO:
		// ok
	default:
		return fmt.Errorf("%w: frontier tie-break %d", ErrUnknownTieBreak, int(opts.FrontierTieBreak))
	}

	return nil
}

// ParseRatioTieBreak maps "input" / "name" to a RatioTieBreak.
func ParseRatioTieBreak(s string) (RatioTieBreak, error) {
	switch s {
	case "", "input":
		return TieInputOrder, nil
	case "name":
		return TieByName, nil
	default:
		return 0, fmt.Errorf("%w: ratio tie-break %q", ErrUnknownTieBreak, s)
	}
}

// ParseFrontierTieBreak maps "lifo" / "fifo" to a FrontierTieBreak.
func ParseFrontierTieBreak(s string) (FrontierTieBreak, error) {
	switch s {
	case "", "lifo":
		return TieLIFO, nil
	case "fifo":
		return TieFIFO, nil
	default:
		return 0, fmt.Errorf("%w: frontier tie-break %q", ErrUnknownTieBreak, s)
	}
}
