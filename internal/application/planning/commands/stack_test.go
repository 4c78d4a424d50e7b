package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avolkov/voyageplan-go/internal/adapters/persistence"
	"github.com/avolkov/voyageplan-go/internal/application/planning"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
	"github.com/avolkov/voyageplan-go/test/helpers"
)

// planningStack is a full planning slice over an in-memory database seeded
// with the baseline fixture data.
type planningStack struct {
	db        *gorm.DB
	loader    *planning.DataLoader
	engine    *schedule.Engine
	scenarios *persistence.GormScenarioRepository
}

func newPlanningStack(t *testing.T) *planningStack {
	t.Helper()
	db := helpers.NewTestDB(t)
	ctx := context.Background()

	data := helpers.BaselinePlanningData(t)

	vessels := persistence.NewGormVesselRepository(db)
	for _, v := range data.Vessels {
		require.NoError(t, vessels.Save(ctx, v))
	}
	cargoRepo := persistence.NewGormCargoRepository(db)
	for _, c := range data.Commitments {
		require.NoError(t, cargoRepo.Save(ctx, c))
	}
	routes := persistence.NewGormRouteRepository(db)
	for _, r := range data.Routes {
		require.NoError(t, routes.Save(ctx, r))
	}
	ports := persistence.NewGormPortRepository(db)
	for _, p := range data.Ports {
		require.NoError(t, ports.Save(ctx, p))
	}

	return &planningStack{
		db:        db,
		loader:    planning.NewDataLoader(vessels, cargoRepo, routes, ports),
		engine:    schedule.NewEngine(nil, nil),
		scenarios: persistence.NewGormScenarioRepository(db),
	}
}
