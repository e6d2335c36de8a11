package knapsack

// RatioTieBreak pins the catalog order among items with equal ratios.
type RatioTieBreak int

const (
	// TieInputOrder keeps equal-ratio items in input order (stable sort).
	TieInputOrder RatioTieBreak = iota

	// TieByName orders equal-ratio items by name ascending, then by input order.
	TieByName
)

// String implements fmt.Stringer.
func (t RatioTieBreak) String() string {
	switch t {
	case TieInputOrder:
		return "input"
	case TieByName:
		return "name"
	default:
		return "unknown"
	}
}

// FrontierTieBreak pins the extraction order among frontier nodes with equal bounds.
type FrontierTieBreak int

const (
	// TieLIFO extracts the most recently inserted node first among equal bounds.
	// This is the reference contract; search paths are reproducible under it.
	TieLIFO FrontierTieBreak = iota

	// TieFIFO extracts the oldest node first among equal bounds.
	// Results stay optimal but extraction sequences differ from TieLIFO.
	TieFIFO
)

// String implements fmt.Stringer.
func (t FrontierTieBreak) String() string {
	switch t {
	case TieLIFO:
		return "lifo"
	case TieFIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// Options configures Solve.
//
// IterationCap     – upper bound on loop iterations. Must be > 0. Default DefaultIterationCap.
// RatioTieBreak    – catalog order among equal ratios (Solve only; SolveCatalog receives a ranked catalog).
// FrontierTieBreak – extraction order among equal bounds. Default TieLIFO.
// Hooks            – optional observers.
type Options struct {
	IterationCap     int
	RatioTieBreak    RatioTieBreak
	FrontierTieBreak FrontierTieBreak
	Hooks            Hooks
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the default search configuration:
//   - IterationCap:     DefaultIterationCap
//   - RatioTieBreak:    TieInputOrder
//   - FrontierTieBreak: TieLIFO
//   - Hooks:            none
func DefaultOptions() Options {
	return Options{
		IterationCap:     DefaultIterationCap,
		RatioTieBreak:    TieInputOrder,
		FrontierTieBreak: TieLIFO,
	}
}

// WithIterationCap sets the iteration cap. Non-positive values make Solve
// return ErrBadIterationCap.
func WithIterationCap(limit int) Option {
	return func(o *Options) {
		o.IterationCap = limit
	}
}

// WithRatioTieBreak sets the catalog tie-break among equal ratios.
func WithRatioTieBreak(t RatioTieBreak) Option {
	return func(o *Options) {
		o.RatioTieBreak = t
	}
}

// WithFrontierTieBreak sets the frontier tie-break among equal bounds.
func WithFrontierTieBreak(t FrontierTieBreak) Option {
	return func(o *Options) {
		o.FrontierTieBreak = t
	}
}

// WithHooks installs observers. Use ChainHooks to combine several.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = h
	}
}
