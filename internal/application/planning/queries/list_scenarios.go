package queries

import (
	"context"
	"fmt"

	"github.com/avolkov/voyageplan-go/internal/application/common"
)

// ListScenariosQuery lists persisted scenario summaries.
type ListScenariosQuery struct{}

// ListScenariosHandler lists scenario summaries.
type ListScenariosHandler struct {
	scenarios common.ScenarioRepository
}

// NewListScenariosHandler creates the handler.
func NewListScenariosHandler(scenarios common.ScenarioRepository) *ListScenariosHandler {
	return &ListScenariosHandler{scenarios: scenarios}
}

// Handle executes the query.
func (h *ListScenariosHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListScenariosQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return h.scenarios.List(ctx)
}
