package planning

import (
	"context"
	"fmt"

	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
)

// DataLoader gathers the master and planning data an optimization run needs.
// This is the one blocking read at the start of a run; the engine itself
// never touches persistence.
type DataLoader struct {
	vessels common.VesselRepository
	cargo   common.CargoRepository
	routes  common.RouteRepository
	ports   common.PortRepository
}

// NewDataLoader creates a loader over the master-data repositories.
func NewDataLoader(vessels common.VesselRepository, cargo common.CargoRepository, routes common.RouteRepository, ports common.PortRepository) *DataLoader {
	return &DataLoader{vessels: vessels, cargo: cargo, routes: routes, ports: ports}
}

// Load fetches one consistent snapshot of planning data. Scope filtering
// (module, allow-list) stays in the engine config so there is a single
// assignment loop for every fleet module.
func (l *DataLoader) Load(ctx context.Context) (*schedule.PlanningData, error) {
	vessels, err := l.vessels.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading vessels: %w", err)
	}
	commitments, err := l.cargo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cargo commitments: %w", err)
	}
	routes, err := l.routes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading routes: %w", err)
	}
	ports, err := l.ports.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ports: %w", err)
	}

	return &schedule.PlanningData{
		Vessels:     vessels,
		Commitments: commitments,
		Routes:      routes,
		Ports:       ports,
	}, nil
}
