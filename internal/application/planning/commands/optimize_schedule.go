package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/avolkov/voyageplan-go/internal/adapters/metrics"
	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/application/planning"
	"github.com/avolkov/voyageplan-go/internal/domain/finance"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// OptimizeScheduleCommand requests one optimization run for one strategy.
type OptimizeScheduleCommand struct {
	Module   string
	Strategy string
	Year     int

	// Optional run options; zero values fall back to the configured defaults.
	Vessels              []string
	LoadCargoCommitments bool
	UseTemplates         bool
	MinUtilizationPct    float64
	MaxUtilizationPct    float64
	Params               *finance.CalculationParams

	// SaveAs persists the result as a scenario under the given id.
	SaveAs string
}

// OptimizeScheduleResult carries the run output. SaveError is set when the
// run succeeded but persisting the scenario did not; a storage failure never
// discards the computed schedule.
type OptimizeScheduleResult struct {
	Result     *schedule.OptimizationResult
	ScenarioID string
	SaveError  string
}

// OptimizeScheduleHandler loads planning data, runs the engine once and
// optionally snapshots the result.
type OptimizeScheduleHandler struct {
	loader     *planning.DataLoader
	engine     *schedule.Engine
	scenarios  common.ScenarioRepository
	defaultCfg schedule.Config
	clock      shared.Clock
}

// NewOptimizeScheduleHandler creates the handler.
func NewOptimizeScheduleHandler(loader *planning.DataLoader, engine *schedule.Engine, scenarios common.ScenarioRepository, defaultCfg schedule.Config, clock shared.Clock) *OptimizeScheduleHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &OptimizeScheduleHandler{
		loader:     loader,
		engine:     engine,
		scenarios:  scenarios,
		defaultCfg: defaultCfg,
		clock:      clock,
	}
}

// Handle executes the optimization run.
func (h *OptimizeScheduleHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*OptimizeScheduleCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	strategy, err := schedule.ParseStrategy(cmd.Strategy)
	if err != nil {
		return nil, err
	}

	cfg := BuildRunConfig(h.defaultCfg, cmd)
	cfg.OptimizationGoal = strategy

	data, err := h.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := h.engine.Run(data, strategy, cfg)
	metrics.RecordOptimizationRun(string(strategy), time.Since(start).Seconds(), err == nil)
	if err != nil {
		return nil, err
	}
	recordRunMetrics(result)

	out := &OptimizeScheduleResult{Result: result}
	if cmd.SaveAs != "" {
		scenario := &common.Scenario{
			ID:        cmd.SaveAs,
			Result:    result,
			CreatedAt: h.clock.Now(),
		}
		if saveErr := h.scenarios.Save(ctx, scenario); saveErr != nil {
			out.SaveError = saveErr.Error()
		} else {
			out.ScenarioID = cmd.SaveAs
			metrics.RecordScenarioSaved()
		}
	}
	return out, nil
}

// recordRunMetrics publishes the headline numbers of a completed run.
func recordRunMetrics(result *schedule.OptimizationResult) {
	strategy := string(result.Strategy)
	metrics.RecordRunOutcome(strategy, result.OptimalityScore, len(result.Voyages), len(result.Unassigned))

	counts := map[string]int{"critical": 0, "high": 0, "medium": 0, "low": 0}
	for _, c := range result.Conflicts {
		counts[string(c.Severity)]++
	}
	metrics.RecordConflicts(strategy, counts)
}

// BuildRunConfig merges a command's options over the configured defaults.
func BuildRunConfig(defaults schedule.Config, cmd *OptimizeScheduleCommand) schedule.Config {
	cfg := defaults
	cfg.Module = cmd.Module
	if cmd.Year != 0 {
		cfg.Year = cmd.Year
	}
	if len(cmd.Vessels) > 0 {
		cfg.Vessels = cmd.Vessels
	}
	if cmd.LoadCargoCommitments {
		cfg.LoadCargoCommitments = true
	}
	if cmd.UseTemplates {
		cfg.UseTemplates = true
	}
	if cmd.MinUtilizationPct != 0 || cmd.MaxUtilizationPct != 0 {
		cfg.MinUtilizationPct = cmd.MinUtilizationPct
		cfg.MaxUtilizationPct = cmd.MaxUtilizationPct
	}
	if cmd.Params != nil {
		cfg.Params = cmd.Params
	}
	return cfg
}
