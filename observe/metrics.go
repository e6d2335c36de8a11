package observe

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Metrics holds the Prometheus collectors fed by knapsack search hooks.
// Collectors are safe for concurrent use, so one Metrics may observe
// several searches at once; the gauges then report the latest event.
type Metrics struct {
	Iterations       prometheus.Counter
	NodesInserted    prometheus.Counter
	NodesPruned      *prometheus.CounterVec
	IncumbentUpdates prometheus.Counter
	Runs             *prometheus.CounterVec
	BestProfit       prometheus.Gauge
	FrontierSize     prometheus.Gauge
	SearchIterations prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Iterations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "knapsack_iterations_total",
				Help: "Frontier extractions performed by the search driver.",
			},
		),
		NodesInserted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "knapsack_nodes_inserted_total",
				Help: "Candidate nodes inserted into the frontier.",
			},
		),
		NodesPruned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_nodes_pruned_total",
				Help: "Candidate nodes discarded because their bound could not beat the incumbent.",
			},
			[]string{"branch"},
		),
		IncumbentUpdates: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "knapsack_incumbent_updates_total",
				Help: "Strict improvements of the best known feasible selection.",
			},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_runs_total",
				Help: "Finished searches by terminating state.",
			},
			[]string{"terminated_by"},
		),
		BestProfit: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "knapsack_best_profit",
				Help: "Profit of the most recent incumbent.",
			},
		),
		FrontierSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "knapsack_frontier_size",
				Help: "Frontier length after the most recent iteration.",
			},
		),
		SearchIterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "knapsack_search_iterations",
				Help:    "Iterations used per finished search.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}

	for _, c := range []prometheus.Collector{
		m.Iterations,
		m.NodesInserted,
		m.NodesPruned,
		m.IncumbentUpdates,
		m.Runs,
		m.BestProfit,
		m.FrontierSize,
		m.SearchIterations,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("observe: registering collector: %w", err)
		}
	}

	return m, nil
}

// Hooks returns search hooks that update the collectors.
func (m *Metrics) Hooks() knapsack.Hooks {
	return knapsack.Hooks{
		OnExtract: func(int, knapsack.Node) {
			m.Iterations.Inc()
		},
		OnInsert: func(knapsack.Node, knapsack.Branch) {
			m.NodesInserted.Inc()
		},
		OnPrune: func(_ knapsack.Node, b knapsack.Branch) {
			m.NodesPruned.WithLabelValues(b.String()).Inc()
		},
		OnIncumbent: func(_ int, inc knapsack.Incumbent) {
			m.IncumbentUpdates.Inc()
			m.BestProfit.Set(float64(inc.Profit))
		},
		OnIteration: func(p knapsack.Progress) {
			m.FrontierSize.Set(float64(p.FrontierLen))
		},
		OnFinish: func(r knapsack.Result) {
			m.Runs.WithLabelValues(r.TerminatedBy.String()).Inc()
			m.SearchIterations.Observe(float64(r.Stats.Iterations))
		},
	}
}

// WriteTextfile writes every metric gathered from g to path in the
// node_exporter textfile format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("observe: writing metrics to %s: %w", path, err)
	}

	return nil
}
