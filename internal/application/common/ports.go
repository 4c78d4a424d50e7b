package common

import (
	"context"
	"time"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
)

// VesselRepository defines vessel master-data reads. Master data is read-only
// for the duration of an optimization run.
type VesselRepository interface {
	FindAll(ctx context.Context) ([]*fleet.Vessel, error)
	FindByModule(ctx context.Context, module string) ([]*fleet.Vessel, error)
	Save(ctx context.Context, vessel *fleet.Vessel) error
}

// CargoRepository defines cargo commitment persistence operations.
type CargoRepository interface {
	FindAll(ctx context.Context) ([]*cargo.Commitment, error)
	FindPending(ctx context.Context) ([]*cargo.Commitment, error)
	Save(ctx context.Context, commitment *cargo.Commitment) error
}

// RouteRepository defines route reference-data reads.
type RouteRepository interface {
	FindAll(ctx context.Context) ([]*routing.Route, error)
	Save(ctx context.Context, route *routing.Route) error
}

// PortRepository defines port reference-data reads.
type PortRepository interface {
	FindAll(ctx context.Context) ([]*routing.Port, error)
	Save(ctx context.Context, port *routing.Port) error
}

// ScenarioSummary is the listing projection of a persisted scenario.
type ScenarioSummary struct {
	ID              string    `json:"id"`
	Strategy        string    `json:"strategy"`
	OptimalityScore float64   `json:"optimalityScore"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Scenario is a persisted optimization result snapshot plus free-form
// metadata.
type Scenario struct {
	ID        string                       `json:"id"`
	Result    *schedule.OptimizationResult `json:"result"`
	Metadata  map[string]string            `json:"metadata,omitempty"`
	CreatedAt time.Time                    `json:"createdAt"`
}

// ScenarioRepository persists optimization result snapshots. Save is an
// atomic upsert keyed by id; there are no partial updates.
type ScenarioRepository interface {
	Save(ctx context.Context, scenario *Scenario) error
	FindByID(ctx context.Context, id string) (*Scenario, error)
	List(ctx context.Context) ([]*ScenarioSummary, error)
	Delete(ctx context.Context, id string) error
}
