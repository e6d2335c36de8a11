// Package knapsack - best-first Branch-and-Bound search driver.
//
// Solve explores the state-space tree of include/exclude decisions in
// best-bound-first order:
//
//  1. The catalog is ranked once (descending ratio); the root node at level -1
//     is bounded and inserted into the frontier.
//  2. While the frontier is non-empty and the iteration cap is not reached,
//     the best-bound node is extracted. If its bound does not exceed the
//     incumbent profit, no remaining node can either (the frontier is
//     bound-ordered), so the search is exhausted.
//  3. Otherwise both children for the next catalog item are derived. Each is
//     bounded fresh and inserted only if its bound beats the incumbent. A
//     feasible include child that beats the incumbent becomes the incumbent
//     before its own bound is compared.
//  4. Hitting the cap with live nodes left ends the search as CAPPED: the
//     incumbent is valid but not proven optimal.
//
// All state lives in a per-call engine value; there are no package-level
// mutable variables and no locks.
package knapsack

// bbEngine holds all search data for one Solve call.
type bbEngine struct {
	// Configuration / policy
	cat      Catalog
	capacity int64
	limit    int
	hooks    Hooks

	// Search state
	frontier *Frontier
	state    State
	iter     int

	// Best feasible selection so far
	inc Incumbent

	stats Stats
}

// Solve ranks items and runs the best-first branch-and-bound search for the
// given capacity.
//
// Errors (before any search work, no partial result):
//   - ErrInvalidItem (wrapped) for non-positive weight or negative profit.
//   - ErrNegativeCapacity for capacity < 0.
//   - ErrBadIterationCap / ErrUnknownTieBreak for invalid options.
//
// Reaching the iteration cap is not an error: Result.TerminatedBy is
// StateCapped and Result.Optimal is false.
func Solve(items []Item, capacity int64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateOptions(cfg); err != nil {
		return Result{}, err
	}
	if err := validateCapacity(capacity); err != nil {
		return Result{}, err
	}
	cat, err := RankWith(items, cfg.RatioTieBreak)
	if err != nil {
		return Result{}, err
	}

	return run(cat, capacity, cfg), nil
}

// SolveCatalog runs the search on an already ranked catalog.
// Options.RatioTieBreak is ignored because the catalog order is fixed.
func SolveCatalog(cat Catalog, capacity int64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateOptions(cfg); err != nil {
		return Result{}, err
	}
	if err := validateCapacity(capacity); err != nil {
		return Result{}, err
	}

	return run(cat, capacity, cfg), nil
}

// run executes the state machine RUNNING → EXHAUSTED|CAPPED → DONE.
func run(cat Catalog, capacity int64, cfg Options) Result {
	e := bbEngine{
		cat:      cat,
		capacity: capacity,
		limit:    cfg.IterationCap,
		hooks:    cfg.Hooks,
		frontier: NewFrontier(cfg.FrontierTieBreak),
		state:    StateRunning,
		inc:      Incumbent{Selection: []int{}},
	}

	root := NewRoot()
	root = root.withBound(Bound(root, cat, capacity))
	e.insert(root, BranchRoot)

	for e.state == StateRunning {
		e.step()
	}

	res := e.result()
	e.state = StateDone
	if e.hooks.OnFinish != nil {
		e.hooks.OnFinish(res)
	}

	return res
}

// step performs one loop iteration or decides termination.
func (e *bbEngine) step() {
	if e.frontier.IsEmpty() {
		e.state = StateExhausted

		return
	}
	if e.iter >= e.limit {
		e.state = StateCapped

		return
	}

	node, err := e.frontier.ExtractBest()
	if err != nil {
		// Unreachable: emptiness was checked above.
		e.state = StateExhausted

		return
	}
	if e.hooks.OnExtract != nil {
		e.hooks.OnExtract(e.iter+1, node)
	}

	// Bound-ordered frontier: nothing left can beat the incumbent.
	if node.bound <= float64(e.inc.Profit) {
		e.iter++
		e.state = StateExhausted
		e.progress()

		return
	}

	e.branch(node)
	e.iter++
	e.progress()
}

// branch derives, bounds and (conditionally) inserts both children of node.
// Nodes at the last catalog level have no children.
func (e *bbEngine) branch(node Node) {
	if excl, ok := node.Child(e.cat, false); ok {
		excl = excl.withBound(Bound(excl, e.cat, e.capacity))
		e.offer(excl, BranchExclude)
	}

	if incl, ok := node.Child(e.cat, true); ok {
		if incl.feasible(e.capacity) && incl.profit > e.inc.Profit {
			e.recordIncumbent(incl)
		}
		incl = incl.withBound(Bound(incl, e.cat, e.capacity))
		e.offer(incl, BranchInclude)
	}
}

// offer inserts nd if its fresh bound beats the incumbent, else prunes it.
func (e *bbEngine) offer(nd Node, b Branch) {
	if nd.bound > float64(e.inc.Profit) {
		e.insert(nd, b)

		return
	}
	e.stats.Pruned++
	if e.hooks.OnPrune != nil {
		e.hooks.OnPrune(nd, b)
	}
}

// insert pushes nd into the frontier and tracks the frontier high-water mark.
func (e *bbEngine) insert(nd Node, b Branch) {
	e.frontier.Insert(nd)
	e.stats.Inserted++
	if l := e.frontier.Len(); l > e.stats.MaxFrontier {
		e.stats.MaxFrontier = l
	}
	if e.hooks.OnInsert != nil {
		e.hooks.OnInsert(nd, b)
	}
}

// recordIncumbent commits nd as the new best feasible selection.
func (e *bbEngine) recordIncumbent(nd Node) {
	e.inc = Incumbent{
		Profit:    nd.profit,
		Weight:    nd.weight,
		Selection: nd.Selection(),
	}
	e.stats.IncumbentUpdates++
	if e.hooks.OnIncumbent != nil {
		e.hooks.OnIncumbent(e.iter+1, e.snapshot())
	}
}

// progress reports the end of an iteration.
func (e *bbEngine) progress() {
	if e.hooks.OnIteration == nil {
		return
	}
	e.hooks.OnIteration(Progress{
		Iteration:   e.iter,
		FrontierLen: e.frontier.Len(),
		Incumbent:   e.snapshot(),
		State:       e.state,
	})
}

// snapshot returns a copy of the incumbent safe to hand to observers.
func (e *bbEngine) snapshot() Incumbent {
	inc := e.inc
	inc.Selection = append([]int(nil), e.inc.Selection...)

	return inc
}

// result maps the incumbent back to item names and input positions.
func (e *bbEngine) result() Result {
	var (
		sel  = make([]string, len(e.inc.Selection))
		idx  = make([]int, len(e.inc.Selection))
		i, j int
	)
	for i, j = range e.inc.Selection {
		sel[i] = e.cat.At(j).Name
		idx[i] = e.cat.Original(j)
	}
	e.stats.Iterations = e.iter

	return Result{
		Profit:       e.inc.Profit,
		Weight:       e.inc.Weight,
		Selection:    sel,
		Indices:      idx,
		TerminatedBy: e.state,
		Optimal:      e.state == StateExhausted,
		Stats:        e.stats,
	}
}
