package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/voyageplan-go/internal/adapters/persistence"
	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/application/planning/queries"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
	"github.com/avolkov/voyageplan-go/test/helpers"
)

func seedScenario(t *testing.T, repo common.ScenarioRepository, id string, score float64) {
	t.Helper()
	err := repo.Save(context.Background(), &common.Scenario{
		ID: id,
		Result: &schedule.OptimizationResult{
			Strategy:        schedule.StrategyBalance,
			Year:            helpers.FixtureYear,
			Voyages:         []*schedule.Voyage{},
			Conflicts:       []*schedule.ScheduleConflict{},
			OptimalityScore: score,
		},
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestGetScenarioHandler(t *testing.T) {
	// Arrange
	repo := persistence.NewGormScenarioRepository(helpers.NewTestDB(t))
	seedScenario(t, repo, "q1-plan", 75)
	handler := queries.NewGetScenarioHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetScenarioQuery{ID: "q1-plan"})

	// Assert
	require.NoError(t, err)
	scenario, ok := resp.(*common.Scenario)
	require.True(t, ok)
	assert.Equal(t, "q1-plan", scenario.ID)
	assert.Equal(t, 75.0, scenario.Result.OptimalityScore)
}

func TestGetScenarioHandler_MissingID(t *testing.T) {
	repo := persistence.NewGormScenarioRepository(helpers.NewTestDB(t))
	handler := queries.NewGetScenarioHandler(repo)

	_, err := handler.Handle(context.Background(), &queries.GetScenarioQuery{})
	assert.True(t, shared.IsValidation(err))

	_, err = handler.Handle(context.Background(), &queries.GetScenarioQuery{ID: "absent"})
	assert.True(t, shared.IsNotFound(err))
}

func TestListScenariosHandler(t *testing.T) {
	// Arrange
	repo := persistence.NewGormScenarioRepository(helpers.NewTestDB(t))
	seedScenario(t, repo, "plan-a", 60)
	seedScenario(t, repo, "plan-b", 80)
	handler := queries.NewListScenariosHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.ListScenariosQuery{})

	// Assert
	require.NoError(t, err)
	summaries, ok := resp.([]*common.ScenarioSummary)
	require.True(t, ok)
	assert.Len(t, summaries, 2)
}
