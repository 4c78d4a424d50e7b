package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/voyageplan-go/internal/adapters/persistence"
	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
	"github.com/avolkov/voyageplan-go/test/helpers"
)

func newScenario(id string, score float64, createdAt time.Time) *common.Scenario {
	return &common.Scenario{
		ID: id,
		Result: &schedule.OptimizationResult{
			Strategy:        schedule.StrategyMaxRevenue,
			Year:            helpers.FixtureYear,
			Voyages:         []*schedule.Voyage{},
			Conflicts:       []*schedule.ScheduleConflict{},
			OptimalityScore: score,
			GeneratedAt:     createdAt,
		},
		Metadata:  map[string]string{"source": "test"},
		CreatedAt: createdAt,
	}
}

func TestScenarioRepository_SaveAndFindByID(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScenarioRepository(db)
	ctx := context.Background()
	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	// Act
	err := repo.Save(ctx, newScenario("q1-plan", 87.5, created))
	require.NoError(t, err)
	found, err := repo.FindByID(ctx, "q1-plan")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "q1-plan", found.ID)
	assert.Equal(t, schedule.StrategyMaxRevenue, found.Result.Strategy)
	assert.Equal(t, helpers.FixtureYear, found.Result.Year)
	assert.Equal(t, 87.5, found.Result.OptimalityScore)
	assert.Equal(t, "test", found.Metadata["source"])
}

func TestScenarioRepository_SaveOverwritesExisting(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScenarioRepository(db)
	ctx := context.Background()
	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, newScenario("q1-plan", 50.0, created)))

	// Act: same id, new snapshot.
	require.NoError(t, repo.Save(ctx, newScenario("q1-plan", 92.0, created)))
	found, err := repo.FindByID(ctx, "q1-plan")

	// Assert: last writer wins, one record.
	require.NoError(t, err)
	assert.Equal(t, 92.0, found.Result.OptimalityScore)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestScenarioRepository_ListNewestFirst(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScenarioRepository(db)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, newScenario("older", 60, base)))
	require.NoError(t, repo.Save(ctx, newScenario("newer", 70, base.Add(time.Hour))))

	// Act
	summaries, err := repo.List(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "newer", summaries[0].ID)
	assert.Equal(t, "older", summaries[1].ID)
	assert.Equal(t, 70.0, summaries[0].OptimalityScore)
	assert.Equal(t, "maxrevenue", summaries[0].Strategy)
}

func TestScenarioRepository_Delete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScenarioRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, newScenario("doomed", 10, time.Now().UTC())))

	// Act
	err := repo.Delete(ctx, "doomed")

	// Assert
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, "doomed")
	assert.True(t, shared.IsNotFound(err))
}

func TestScenarioRepository_NotFoundIsTyped(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScenarioRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "missing")
	assert.True(t, shared.IsNotFound(err))

	err = repo.Delete(ctx, "missing")
	assert.True(t, shared.IsNotFound(err))
}

func TestScenarioRepository_RejectsInvalidInput(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScenarioRepository(db)
	ctx := context.Background()

	assert.Error(t, repo.Save(ctx, nil))
	assert.Error(t, repo.Save(ctx, &common.Scenario{ID: ""}))
	assert.Error(t, repo.Save(ctx, &common.Scenario{ID: "no-result"}))
}
