package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/voyageplan-go/internal/adapters/persistence"
	"github.com/avolkov/voyageplan-go/test/helpers"
)

func TestSeedMasterData_PopulatesEmptyDatabase(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	rt := &runtime{
		db:      db,
		vessels: persistence.NewGormVesselRepository(db),
		cargo:   persistence.NewGormCargoRepository(db),
		routes:  persistence.NewGormRouteRepository(db),
		ports:   persistence.NewGormPortRepository(db),
	}
	ctx := context.Background()

	// Act
	require.NoError(t, seedMasterData(ctx, rt, 2026))

	// Assert
	vessels, err := rt.vessels.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, vessels, 3)

	ports, err := rt.ports.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, ports, 2)

	routes, err := rt.routes.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, routes, 1)

	pending, err := rt.cargo.FindPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, 2026, pending[0].LaycanStart().Year())
}

func TestSeedMasterData_IsIdempotent(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	rt := &runtime{
		db:      db,
		vessels: persistence.NewGormVesselRepository(db),
		cargo:   persistence.NewGormCargoRepository(db),
		routes:  persistence.NewGormRouteRepository(db),
		ports:   persistence.NewGormPortRepository(db),
	}
	ctx := context.Background()

	// Act: seeding twice upserts, never duplicates.
	require.NoError(t, seedMasterData(ctx, rt, 2026))
	require.NoError(t, seedMasterData(ctx, rt, 2026))

	// Assert
	vessels, err := rt.vessels.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, vessels, 3)

	pending, err := rt.cargo.FindPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}
