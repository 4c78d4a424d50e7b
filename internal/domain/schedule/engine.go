package schedule

// Engine runs the full optimization pipeline for one strategy: assignment,
// conflict detection, KPI aggregation. One synchronous batch computation per
// invocation; callers wanting several strategies run the engine once each.
type Engine struct {
	assigner   *Assigner
	aggregator *Aggregator
}

// NewEngine wires the pipeline stages together.
func NewEngine(assigner *Assigner, aggregator *Aggregator) *Engine {
	if assigner == nil {
		assigner = NewAssigner(nil, nil)
	}
	if aggregator == nil {
		aggregator = NewAggregator()
	}
	return &Engine{assigner: assigner, aggregator: aggregator}
}

// Run produces one scored OptimizationResult. The conflicts and KPIs are
// always derived from the voyage list of this same result.
func (e *Engine) Run(data *PlanningData, strategy Strategy, cfg Config) (*OptimizationResult, error) {
	result, err := e.assigner.Optimize(data, strategy, cfg)
	if err != nil {
		return nil, err
	}

	detector := NewDetector(data)
	result.Conflicts = detector.Detect(result)

	activeVessels := len(e.assigner.eligibleVessels(data, cfg))
	result.KPIs = e.aggregator.Aggregate(result, activeVessels, cfg)
	result.OptimalityScore = result.KPIs.OptimalityScore
	return result, nil
}
