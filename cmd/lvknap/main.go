// Command lvknap solves 0-1 knapsack instances read from item files.
//
// Usage:
//
//	lvknap [-config file] [-capacity N] [-cap N] [-verify] [-metrics path] file...
//
// Each file is solved independently. Capacity comes from -capacity, then
// from the instance file, then from the config. Results are printed in
// argument order.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvknap/config"
	"github.com/katalvlaran/lvknap/knapsack"
	"github.com/katalvlaran/lvknap/loader"
	"github.com/katalvlaran/lvknap/observe"
)

var (
	errNoCapacity     = errors.New("no capacity: pass -capacity, set solver.capacity or declare it in the file")
	errVerifyMismatch = errors.New("verification failed")
)

// outcome is the result of one file.
type outcome struct {
	path     string
	capacity int64
	res      knapsack.Result
	exact    *knapsack.Result
	err      error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit, returning the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvknap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to config file")
		capacity   = fs.Int64("capacity", -1, "knapsack capacity (overrides file and config)")
		iterCap    = fs.Int("cap", 0, "iteration cap (overrides config)")
		verify     = fs.Bool("verify", false, "cross-check small instances by exhaustive enumeration")
		textfile   = fs.String("metrics", "", "write Prometheus metrics to this textfile")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: lvknap [flags] file...")
		fs.PrintDefaults()

		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)

		return 1
	}
	if *iterCap > 0 {
		cfg.Solver.IterationCap = *iterCap
	}
	if *verify {
		cfg.Solver.Verify = true
	}
	if *textfile != "" {
		cfg.Metrics.Textfile = *textfile
	}
	opts, err := cfg.Solver.Options()
	if err != nil {
		fmt.Fprintf(stderr, "invalid solver options: %v\n", err)

		return 1
	}

	log := observe.NewLogger(stderr, cfg.Logging.Level, cfg.Logging.Format)
	reg := prometheus.NewRegistry()
	metrics, err := observe.NewMetrics(reg)
	if err != nil {
		log.Error("failed to create metrics", "error", err)

		return 1
	}

	sv := &solver{cfg: cfg, opts: opts, log: log, metrics: metrics}
	if *capacity >= 0 {
		sv.override = capacity
	}
	outcomes := sv.solveAll(ctx, fs.Args())

	code := 0
	for _, o := range outcomes {
		printOutcome(stdout, o)
		if o.err != nil {
			log.Error("instance failed", "file", o.path, "error", o.err)
			code = 1
		}
	}

	if cfg.Metrics.Textfile != "" {
		if err = observe.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			log.Error("failed to write metrics", "error", err)
			code = 1
		}
	}

	return code
}

// solver carries the settings shared by every file of one invocation.
type solver struct {
	cfg      *config.Config
	opts     []knapsack.Option
	override *int64
	log      *observe.Logger
	metrics  *observe.Metrics
}

// solveAll solves every path with bounded concurrency. Per-file failures are
// recorded in the outcome and do not stop the other files.
func (s *solver) solveAll(ctx context.Context, paths []string) []outcome {
	limit := s.cfg.Solver.Parallelism
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]outcome, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			outcomes[i] = s.solveFile(gctx, path)

			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// capacityFor picks the flag override, then the file's capacity, then the config's.
func (s *solver) capacityFor(inst loader.Instance) (int64, error) {
	switch {
	case s.override != nil:
		return *s.override, nil
	case inst.Capacity != nil:
		return *inst.Capacity, nil
	case s.cfg.Solver.Capacity != nil:
		return *s.cfg.Solver.Capacity, nil
	default:
		return 0, errNoCapacity
	}
}

func (s *solver) solveFile(ctx context.Context, path string) outcome {
	o := outcome{path: path}
	if err := ctx.Err(); err != nil {
		o.err = err

		return o
	}

	inst, err := loader.LoadFile(path)
	if err != nil {
		o.err = err

		return o
	}
	if o.capacity, err = s.capacityFor(inst); err != nil {
		o.err = fmt.Errorf("%s: %w", path, err)

		return o
	}

	hooks := knapsack.ChainHooks(s.log.WithInstance(inst.Name).Hooks(), s.metrics.Hooks())
	opts := make([]knapsack.Option, 0, len(s.opts)+1)
	opts = append(opts, s.opts...)
	opts = append(opts, knapsack.WithHooks(hooks))
	if o.res, err = knapsack.Solve(inst.Items, o.capacity, opts...); err != nil {
		o.err = fmt.Errorf("%s: %w", path, err)

		return o
	}

	if s.cfg.Solver.Verify && len(inst.Items) <= knapsack.MaxExhaustiveItems {
		exact, verr := knapsack.Exhaustive(inst.Items, o.capacity)
		if verr != nil {
			o.err = fmt.Errorf("%s: %w", path, verr)

			return o
		}
		o.exact = &exact
		if o.res.Optimal && exact.Profit != o.res.Profit {
			o.err = fmt.Errorf("%s: %w: search found %d, enumeration found %d",
				path, errVerifyMismatch, o.res.Profit, exact.Profit)
		}
	}

	return o
}

// printOutcome writes one result block.
func printOutcome(w io.Writer, o outcome) {
	fmt.Fprintf(w, "== %s\n", o.path)
	if o.err != nil {
		fmt.Fprintf(w, "error:      %v\n\n", o.err)

		return
	}
	r := o.res
	fmt.Fprintf(w, "profit:     %d\n", r.Profit)
	fmt.Fprintf(w, "weight:     %d / %d\n", r.Weight, o.capacity)
	fmt.Fprintf(w, "selection:  %v\n", r.Selection)
	status := "optimal"
	if !r.Optimal {
		status = "not proven optimal"
	}
	fmt.Fprintf(w, "terminated: %s after %d iterations (%s)\n", r.TerminatedBy, r.Stats.Iterations, status)
	if r.TerminatedBy == knapsack.StateCapped {
		fmt.Fprintln(w, "warning:    iteration cap reached; raise -cap for a proven optimum")
	}
	if o.exact != nil {
		fmt.Fprintf(w, "verified:   enumeration optimum %d (gap %d)\n", o.exact.Profit, o.exact.Profit-r.Profit)
	}
	fmt.Fprintln(w)
}
