package knapsack

// Test bridge: exposes unexported helpers to knapsack_test only.

// NodeWithBound returns a copy of nd carrying bound b.
func NodeWithBound(nd Node, b float64) Node { return nd.withBound(b) }

// NewTestNode builds a node with explicit totals, level and bound.
func NewTestNode(profit, weight int64, level int, bound float64) Node {
	return Node{profit: profit, weight: weight, level: level, bound: bound}
}
