package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
	"github.com/avolkov/voyageplan-go/test/helpers"
)

func newCanalRoute() (*routing.Route, error) {
	return routing.NewRoute("ROTTERDAM", "HAMBURG", 1000, true, "Kiel", "low")
}

func TestAssigner_BaselineScenario(t *testing.T) {
	// Arrange
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)
	cfg := helpers.BaselineConfig(schedule.StrategyMaxRevenue)

	// Act
	result, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, cfg)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Voyages, 2)
	assert.Empty(t, result.Unassigned)

	// Voyage ids are deterministic: year plus assignment sequence.
	assert.Equal(t, "VOY-2026-001", result.Voyages[0].ID)
	assert.Equal(t, "VOY-2026-002", result.Voyages[1].ID)

	// Equal revenue candidates fall through to the earliest-available, then
	// lowest-id vessel.
	assert.Equal(t, "V-001", result.Voyages[0].VesselID)
	assert.Equal(t, "C-001", result.Voyages[0].CommitmentID)
	assert.Equal(t, "V-002", result.Voyages[1].VesselID)
	assert.Equal(t, "C-002", result.Voyages[1].CommitmentID)

	require.Len(t, result.Financials, 2)
	assert.Equal(t, 100000.0, result.Financials[0].Revenue)
	assert.Equal(t, 80000.0, result.Financials[1].Revenue)
	assert.Equal(t, "VOY-2026-001", result.Financials[0].VoyageID)
}

func TestAssigner_DeterministicAcrossRuns(t *testing.T) {
	// Arrange
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)
	cfg := helpers.BaselineConfig(schedule.StrategyMaxRevenue)

	// Act
	first, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, cfg)
	require.NoError(t, err)
	second, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, cfg)
	require.NoError(t, err)

	// Assert
	require.Len(t, second.Voyages, len(first.Voyages))
	for i := range first.Voyages {
		assert.Equal(t, first.Voyages[i].ID, second.Voyages[i].ID)
		assert.Equal(t, first.Voyages[i].VesselID, second.Voyages[i].VesselID)
		assert.Equal(t, first.Voyages[i].CommitmentID, second.Voyages[i].CommitmentID)
		assert.True(t, first.Voyages[i].StartDate.Equal(second.Voyages[i].StartDate))
	}
}

func TestAssigner_InputCommitmentsNotMutated(t *testing.T) {
	// Arrange
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)

	// Act
	_, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, helpers.BaselineConfig(schedule.StrategyMaxRevenue))

	// Assert: the run works on clones, the caller's commitments stay Pending.
	require.NoError(t, err)
	for _, cm := range data.Commitments {
		assert.Equal(t, cargo.CommitmentStatusPending, cm.Status())
		assert.Empty(t, cm.LaneID())
	}
}

func TestAssigner_OversizeCargoIsUnassigned(t *testing.T) {
	// Arrange: 12,000 MT against a fleet of 10,000 DWT vessels.
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)
	data.Commitments = append(data.Commitments, helpers.NewCommitment(t, "C-BIG", 12000, 90))

	// Act
	result, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, helpers.BaselineConfig(schedule.StrategyMaxRevenue))

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Voyages, 2)
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, "C-BIG", result.Unassigned[0].CommitmentID)
	assert.Equal(t, "no vessel with sufficient deadweight", result.Unassigned[0].Reason)
	assert.Equal(t, 0, result.Unassigned[0].CapableVessels)
}

func TestAssigner_MissingRouteIsUnassigned(t *testing.T) {
	// Arrange: a commitment on a lane with no route on file.
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)
	orphan, err := cargo.NewCommitment("C-ORPHAN", "crude", 3000, "SINGAPORE", "HOUSTON",
		data.Commitments[0].LaycanStart(), data.Commitments[0].LaycanEnd())
	require.NoError(t, err)
	data.Commitments = append(data.Commitments, orphan)

	// Act
	result, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, helpers.BaselineConfig(schedule.StrategyMaxRevenue))

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, "C-ORPHAN", result.Unassigned[0].CommitmentID)
	assert.Contains(t, result.Unassigned[0].Reason, "no route between")
	assert.Equal(t, 3, result.Unassigned[0].CapableVessels)
}

func TestAssigner_VesselAllowListRestrictsFleet(t *testing.T) {
	// Arrange
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)
	cfg := helpers.BaselineConfig(schedule.StrategyMaxRevenue)
	cfg.Vessels = []string{"V-003"}

	// Act
	result, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, cfg)

	// Assert: every voyage goes to the only allowed vessel.
	require.NoError(t, err)
	require.NotEmpty(t, result.Voyages)
	for _, v := range result.Voyages {
		assert.Equal(t, "V-003", v.VesselID)
	}
}

func TestAssigner_InactiveVesselsAreExcluded(t *testing.T) {
	// Arrange: only an inactive vessel in scope.
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)
	inactive, err := fleet.NewVessel("V-INACT", "MV Inactive", "handysize", "", 10000, 12, 10000, "ROTTERDAM", fleet.VesselStatusInactive)
	require.NoError(t, err)
	data.Vessels = []*fleet.Vessel{inactive}

	// Act
	_, err = assigner.Optimize(data, schedule.StrategyMaxRevenue, helpers.BaselineConfig(schedule.StrategyMaxRevenue))

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no active vessels")
}

func TestAssigner_ModuleFilter(t *testing.T) {
	// Arrange
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)
	cfg := helpers.BaselineConfig(schedule.StrategyMaxRevenue)
	cfg.Module = "arctic"

	// Act: no fixture vessel belongs to the arctic module.
	_, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, cfg)

	// Assert
	assert.Error(t, err)
}

func TestAssigner_UnknownStrategyRejected(t *testing.T) {
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)

	_, err := assigner.Optimize(data, schedule.Strategy("turbo"), helpers.BaselineConfig(schedule.StrategyMaxRevenue))

	assert.Error(t, err)
}

func TestAssigner_MinCostPrefersVesselAtLoadPort(t *testing.T) {
	// Arrange: identical vessels except V-001 would need a 1,000 nm ballast
	// leg from Hamburg. Equal voyage costs fall through to total distance.
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)

	away, err := fleet.NewVessel("V-001", "MV V-001", "handysize", "", 10000, 12, 10000, "HAMBURG", fleet.VesselStatusActive)
	require.NoError(t, err)
	data.Vessels[0] = away

	// Act
	result, err := assigner.Optimize(data, schedule.StrategyMinCost, helpers.BaselineConfig(schedule.StrategyMinCost))

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, result.Voyages)
	assert.Equal(t, "V-002", result.Voyages[0].VesselID)
}

func TestAssigner_VoyageLegsAndTiming(t *testing.T) {
	// Arrange
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)

	// Act
	result, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, helpers.BaselineConfig(schedule.StrategyMaxRevenue))

	// Assert: no repositioning needed, so the leg-set is wait, load, transit,
	// wait, discharge; and loading opens exactly at the laycan start.
	require.NoError(t, err)
	require.NotEmpty(t, result.Voyages)
	voyage := result.Voyages[0]

	types := make([]schedule.LegType, 0, len(voyage.Legs))
	for _, leg := range voyage.Legs {
		types = append(types, leg.Type)
	}
	assert.Equal(t, []schedule.LegType{
		schedule.LegWaiting,
		schedule.LegLoading,
		schedule.LegTransit,
		schedule.LegWaiting,
		schedule.LegDischarge,
	}, types)

	loadStart, _, ok := voyage.LoadingWindow()
	require.True(t, ok)
	assert.True(t, loadStart.Equal(data.Commitments[0].LaycanStart()),
		"loading should open at the laycan start, got %s", loadStart)

	assert.InDelta(t, 231.5, voyage.TotalHours(), 1e-9)
	assert.Equal(t, 1000.0, voyage.TotalDistanceNM())
}

func TestAssigner_CanalRouteAddsCanalLeg(t *testing.T) {
	// Arrange: replace the lane with a canal transit.
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)

	canal, err := newCanalRoute()
	require.NoError(t, err)
	data.Routes[0] = canal

	// Act
	result, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, helpers.BaselineConfig(schedule.StrategyMaxRevenue))

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, result.Voyages)
	found := false
	for _, leg := range result.Voyages[0].Legs {
		if leg.Type == schedule.LegCanal {
			found = true
			assert.Equal(t, "Kiel", leg.FromID)
		}
	}
	assert.True(t, found, "expected a canal leg on a canal-transit route")
}

func TestAssigner_LongHaulInsertsBunkerStop(t *testing.T) {
	// Arrange: shrink the tank so the projected burn exceeds capacity minus
	// reserve on the fixture lane.
	assigner := schedule.NewAssigner(nil, nil)
	data := helpers.BaselinePlanningData(t)
	cfg := helpers.BaselineConfig(schedule.StrategyMaxRevenue)
	cfg.Params.FuelTankCapMT = 200
	cfg.Params.BunkerReserveMT = 150

	// Act
	result, err := assigner.Optimize(data, schedule.StrategyMaxRevenue, cfg)

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, result.Voyages)
	found := false
	for _, leg := range result.Voyages[0].Legs {
		if leg.Type == schedule.LegBunker {
			found = true
		}
	}
	assert.True(t, found, "expected a bunker stop when burn exceeds tank minus reserve")
}
