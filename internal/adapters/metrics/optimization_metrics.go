package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OptimizationMetricsCollector handles all engine run metrics
type OptimizationMetricsCollector struct {
	runsTotal       *prometheus.CounterVec
	runDuration     *prometheus.HistogramVec
	optimalityScore *prometheus.GaugeVec
	voyagesPlanned  *prometheus.GaugeVec
	unassignedCargo *prometheus.GaugeVec
	conflicts       *prometheus.GaugeVec
	scenariosSaved  prometheus.Counter
}

// NewOptimizationMetricsCollector creates a new engine run metrics collector
func NewOptimizationMetricsCollector() *OptimizationMetricsCollector {
	return &OptimizationMetricsCollector{
		// Total runs by strategy and outcome
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "optimization_runs_total",
				Help:      "Total number of optimization runs by strategy and status",
			},
			[]string{"strategy", "status"},
		),

		// Run duration histogram
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "optimization_run_duration_seconds",
				Help:      "Optimization run duration distribution",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
			[]string{"strategy"},
		),

		// Headline score of the most recent run per strategy
		optimalityScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "optimality_score",
				Help:      "Composite optimality score of the most recent run per strategy",
			},
			[]string{"strategy"},
		),

		voyagesPlanned: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "voyages_planned",
				Help:      "Voyages planned in the most recent run per strategy",
			},
			[]string{"strategy"},
		),

		unassignedCargo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "unassigned_commitments",
				Help:      "Cargo commitments left unassigned in the most recent run per strategy",
			},
			[]string{"strategy"},
		),

		conflicts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "schedule_conflicts",
				Help:      "Schedule conflicts detected in the most recent run by severity",
			},
			[]string{"strategy", "severity"},
		),

		scenariosSaved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "scenarios_saved_total",
				Help:      "Total number of scenarios persisted",
			},
		),
	}
}

// Register registers all optimization metrics with the Prometheus registry
func (c *OptimizationMetricsCollector) Register() error {
	return registerAll(
		c.runsTotal,
		c.runDuration,
		c.optimalityScore,
		c.voyagesPlanned,
		c.unassignedCargo,
		c.conflicts,
		c.scenariosSaved,
	)
}

// RecordOptimizationRun records an engine run completion
func (c *OptimizationMetricsCollector) RecordOptimizationRun(strategy string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	c.runsTotal.WithLabelValues(strategy, status).Inc()
	c.runDuration.WithLabelValues(strategy).Observe(duration)
}

// RecordRunOutcome records the headline numbers of a completed run
func (c *OptimizationMetricsCollector) RecordRunOutcome(strategy string, optimalityScore float64, voyages int, unassigned int) {
	c.optimalityScore.WithLabelValues(strategy).Set(optimalityScore)
	c.voyagesPlanned.WithLabelValues(strategy).Set(float64(voyages))
	c.unassignedCargo.WithLabelValues(strategy).Set(float64(unassigned))
}

// RecordConflicts records detected conflict counts by severity
func (c *OptimizationMetricsCollector) RecordConflicts(strategy string, countsBySeverity map[string]int) {
	for severity, count := range countsBySeverity {
		c.conflicts.WithLabelValues(strategy, severity).Set(float64(count))
	}
}

// RecordScenarioSaved records a persisted scenario
func (c *OptimizationMetricsCollector) RecordScenarioSaved() {
	c.scenariosSaved.Inc()
}
