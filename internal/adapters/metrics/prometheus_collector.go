package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "voyageplan"
	// Subsystem for engine metrics
	subsystem = "engine"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalOptimizationCollector is the singleton optimization metrics collector
	// Set by SetGlobalOptimizationCollector() when metrics are enabled
	globalOptimizationCollector OptimizationMetricsRecorder
)

// OptimizationMetricsRecorder defines the interface for recording engine run metrics
// This interface is used by application code to record metrics
type OptimizationMetricsRecorder interface {
	RecordOptimizationRun(strategy string, duration float64, success bool)
	RecordRunOutcome(strategy string, optimalityScore float64, voyages int, unassigned int)
	RecordConflicts(strategy string, countsBySeverity map[string]int)
	RecordScenarioSaved()
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalOptimizationCollector sets the global optimization metrics collector
func SetGlobalOptimizationCollector(collector OptimizationMetricsRecorder) {
	globalOptimizationCollector = collector
}

// RecordOptimizationRun records an engine run completion globally
func RecordOptimizationRun(strategy string, duration float64, success bool) {
	if globalOptimizationCollector != nil {
		globalOptimizationCollector.RecordOptimizationRun(strategy, duration, success)
	}
}

// RecordRunOutcome records the headline numbers of a completed run globally
func RecordRunOutcome(strategy string, optimalityScore float64, voyages int, unassigned int) {
	if globalOptimizationCollector != nil {
		globalOptimizationCollector.RecordRunOutcome(strategy, optimalityScore, voyages, unassigned)
	}
}

// RecordConflicts records detected conflict counts by severity globally
func RecordConflicts(strategy string, countsBySeverity map[string]int) {
	if globalOptimizationCollector != nil {
		globalOptimizationCollector.RecordConflicts(strategy, countsBySeverity)
	}
}

// RecordScenarioSaved records a persisted scenario globally
func RecordScenarioSaved() {
	if globalOptimizationCollector != nil {
		globalOptimizationCollector.RecordScenarioSaved()
	}
}

// registerAll registers a set of collectors, tolerating a nil registry
func registerAll(collectors ...prometheus.Collector) error {
	if Registry == nil {
		return nil // Metrics not enabled
	}
	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}
