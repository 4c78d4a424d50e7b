package queries

import (
	"context"
	"fmt"

	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/application/planning"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
)

// DetectConflictsQuery scans a schedule for conflicts. With a ScheduleID it
// re-scans the persisted scenario against current master data; without one it
// runs a fresh default-strategy optimization and reports its conflicts.
type DetectConflictsQuery struct {
	Module     string
	ScheduleID string
}

// DetectConflictsHandler runs the conflict scan.
type DetectConflictsHandler struct {
	loader     *planning.DataLoader
	engine     *schedule.Engine
	scenarios  common.ScenarioRepository
	defaultCfg schedule.Config
}

// NewDetectConflictsHandler creates the handler.
func NewDetectConflictsHandler(loader *planning.DataLoader, engine *schedule.Engine, scenarios common.ScenarioRepository, defaultCfg schedule.Config) *DetectConflictsHandler {
	return &DetectConflictsHandler{
		loader:     loader,
		engine:     engine,
		scenarios:  scenarios,
		defaultCfg: defaultCfg,
	}
}

// Handle executes the scan. The scan never mutates the scanned schedule;
// resolutions apply as deltas to the next run.
func (h *DetectConflictsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*DetectConflictsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	data, err := h.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	if query.ScheduleID != "" {
		scenario, findErr := h.scenarios.FindByID(ctx, query.ScheduleID)
		if findErr != nil {
			return nil, findErr
		}
		detector := schedule.NewDetector(data)
		return detector.Detect(scenario.Result), nil
	}

	cfg := h.defaultCfg
	cfg.Module = query.Module
	cfg.OptimizationGoal = schedule.StrategyMaxRevenue

	result, err := h.engine.Run(data, schedule.StrategyMaxRevenue, cfg)
	if err != nil {
		return nil, err
	}
	return result.Conflicts, nil
}
