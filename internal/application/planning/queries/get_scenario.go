package queries

import (
	"context"
	"fmt"

	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// GetScenarioQuery retrieves one persisted scenario by id.
type GetScenarioQuery struct {
	ID string
}

// GetScenarioHandler loads scenario snapshots.
type GetScenarioHandler struct {
	scenarios common.ScenarioRepository
}

// NewGetScenarioHandler creates the handler.
func NewGetScenarioHandler(scenarios common.ScenarioRepository) *GetScenarioHandler {
	return &GetScenarioHandler{scenarios: scenarios}
}

// Handle executes the query.
func (h *GetScenarioHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetScenarioQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if query.ID == "" {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}

	return h.scenarios.FindByID(ctx, query.ID)
}
