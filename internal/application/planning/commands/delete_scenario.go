package commands

import (
	"context"
	"fmt"

	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// DeleteScenarioCommand removes a persisted scenario by id.
type DeleteScenarioCommand struct {
	ID string
}

// DeleteScenarioResult reports the outcome of a delete.
type DeleteScenarioResult struct {
	Deleted bool
}

// DeleteScenarioHandler deletes scenario snapshots.
type DeleteScenarioHandler struct {
	scenarios common.ScenarioRepository
}

// NewDeleteScenarioHandler creates the handler.
func NewDeleteScenarioHandler(scenarios common.ScenarioRepository) *DeleteScenarioHandler {
	return &DeleteScenarioHandler{scenarios: scenarios}
}

// Handle executes the delete. A missing scenario surfaces as a typed
// not-found error, not a crash.
func (h *DeleteScenarioHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeleteScenarioCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if cmd.ID == "" {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}

	if err := h.scenarios.Delete(ctx, cmd.ID); err != nil {
		return nil, err
	}
	return &DeleteScenarioResult{Deleted: true}, nil
}
