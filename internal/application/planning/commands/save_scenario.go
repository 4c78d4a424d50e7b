package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// SaveScenarioCommand snapshots an optimization result under a caller-supplied
// or generated id. Saving twice with the same id replaces the whole record.
type SaveScenarioCommand struct {
	ID       string
	Result   *schedule.OptimizationResult
	Metadata map[string]string
}

// SaveScenarioResult reports the id the scenario was stored under.
type SaveScenarioResult struct {
	ID string
}

// SaveScenarioHandler persists scenario snapshots.
type SaveScenarioHandler struct {
	scenarios common.ScenarioRepository
	clock     shared.Clock
}

// NewSaveScenarioHandler creates the handler.
func NewSaveScenarioHandler(scenarios common.ScenarioRepository, clock shared.Clock) *SaveScenarioHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &SaveScenarioHandler{scenarios: scenarios, clock: clock}
}

// Handle executes the save.
func (h *SaveScenarioHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveScenarioCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if cmd.Result == nil {
		return nil, shared.NewValidationError("result", "cannot be nil")
	}

	id := cmd.ID
	if id == "" {
		id = uuid.NewString()
	}

	scenario := &common.Scenario{
		ID:        id,
		Result:    cmd.Result,
		Metadata:  cmd.Metadata,
		CreatedAt: h.clock.Now(),
	}
	if err := h.scenarios.Save(ctx, scenario); err != nil {
		return nil, fmt.Errorf("saving scenario %s: %w", id, err)
	}

	return &SaveScenarioResult{ID: id}, nil
}
