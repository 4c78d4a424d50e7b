package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/voyageplan-go/internal/adapters/persistence"
	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/test/helpers"
)

func newCommitment(t *testing.T, id string, laycanStart time.Time) *cargo.Commitment {
	t.Helper()
	c, err := cargo.NewCommitment(id, "crude", 5000, "ROTTERDAM", "HAMBURG", laycanStart, laycanStart.AddDate(0, 0, 5))
	require.NoError(t, err)
	return c
}

func TestCargoRepository_RoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCargoRepository(db)
	ctx := context.Background()

	laycan := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	original := newCommitment(t, "C-001", laycan)
	original.SetDeliveryDeadline(laycan.AddDate(0, 0, 20))
	original.SetCostAllocations(map[string]float64{"bunker": 0.6, "port": 0.4})

	// Act
	require.NoError(t, repo.Save(ctx, original))
	all, err := repo.FindAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 1)
	loaded := all[0]
	assert.Equal(t, "C-001", loaded.ID())
	assert.Equal(t, "crude", loaded.Commodity())
	assert.Equal(t, 5000.0, loaded.QuantityMT())
	assert.True(t, loaded.LaycanStart().Equal(laycan))
	require.NotNil(t, loaded.DeliveryDeadline())
	assert.True(t, loaded.DeliveryDeadline().Equal(laycan.AddDate(0, 0, 20)))
	assert.Equal(t, map[string]float64{"bunker": 0.6, "port": 0.4}, loaded.CostAllocations())
	assert.Equal(t, cargo.CommitmentStatusPending, loaded.Status())
}

func TestCargoRepository_AssignedStateSurvivesReload(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCargoRepository(db)
	ctx := context.Background()

	laycan := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	assigned := newCommitment(t, "C-ASSIGNED", laycan)
	require.NoError(t, assigned.Assign("VOY-2026-001"))

	// Act
	require.NoError(t, repo.Save(ctx, assigned))
	all, err := repo.FindAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, cargo.CommitmentStatusAssigned, all[0].Status())
	assert.Equal(t, "VOY-2026-001", all[0].LaneID())
}

func TestCargoRepository_CompletedStateSurvivesReload(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCargoRepository(db)
	ctx := context.Background()

	laycan := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	completed := newCommitment(t, "C-DONE", laycan)
	require.NoError(t, completed.Assign("VOY-2026-001"))
	require.NoError(t, completed.Complete())

	// Act
	require.NoError(t, repo.Save(ctx, completed))
	all, err := repo.FindAll(ctx)

	// Assert: a delivered cargo never re-enters the planning pool.
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, cargo.CommitmentStatusCompleted, all[0].Status())
	assert.Equal(t, "VOY-2026-001", all[0].LaneID())

	pending, err := repo.FindPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCargoRepository_FindPendingFiltersAssigned(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCargoRepository(db)
	ctx := context.Background()

	laycan := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	pending := newCommitment(t, "C-PENDING", laycan)
	assigned := newCommitment(t, "C-ASSIGNED", laycan.AddDate(0, 0, 10))
	require.NoError(t, assigned.Assign("VOY-2026-001"))
	require.NoError(t, repo.Save(ctx, pending))
	require.NoError(t, repo.Save(ctx, assigned))

	// Act
	result, err := repo.FindPending(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "C-PENDING", result[0].ID())
}

func TestCargoRepository_FindAllOrderedByLaycan(t *testing.T) {
	// Arrange: inserted out of laycan order.
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCargoRepository(db)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, newCommitment(t, "C-LATE", base.AddDate(0, 0, 30))))
	require.NoError(t, repo.Save(ctx, newCommitment(t, "C-EARLY", base)))

	// Act
	all, err := repo.FindAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "C-EARLY", all[0].ID())
	assert.Equal(t, "C-LATE", all[1].ID())
}
