package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
	"github.com/avolkov/voyageplan-go/test/helpers"
)

func fixtureDate(day int) time.Time {
	return time.Date(helpers.FixtureYear, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
}

func transitVoyage(id, vesselID, commitmentID string, start time.Time, hours float64) *schedule.Voyage {
	return &schedule.Voyage{
		ID:           id,
		VesselID:     vesselID,
		CommitmentID: commitmentID,
		StartDate:    start,
		Status:       schedule.VoyageStatusPlanned,
		Legs: []schedule.VoyageLeg{
			{Type: schedule.LegTransit, FromID: "ROTTERDAM", ToID: "HAMBURG", DistanceNM: 1000, DurationHours: hours},
		},
	}
}

func TestDetector_VesselOverlapIsCritical(t *testing.T) {
	// Arrange: two voyages on V-001 whose spans intersect by a day.
	detector := schedule.NewDetector(helpers.BaselinePlanningData(t))
	result := &schedule.OptimizationResult{
		Voyages: []*schedule.Voyage{
			transitVoyage("VOY-2026-001", "V-001", "C-001", fixtureDate(30), 48),
			transitVoyage("VOY-2026-002", "V-001", "C-002", fixtureDate(31), 48),
		},
	}

	// Act
	conflicts := detector.Detect(result)

	// Assert
	require.Len(t, conflicts, 1)
	assert.Equal(t, "CONF-001", conflicts[0].ID)
	assert.Equal(t, schedule.ConflictVesselOverlap, conflicts[0].Type)
	assert.Equal(t, schedule.SeverityCritical, conflicts[0].Severity)
	assert.Contains(t, conflicts[0].AffectedIDs, "V-001")
	assert.Contains(t, conflicts[0].AffectedIDs, "VOY-2026-001")
	assert.Contains(t, conflicts[0].AffectedIDs, "VOY-2026-002")
}

func TestDetector_BackToBackVoyagesDoNotOverlap(t *testing.T) {
	// Arrange: the second voyage starts exactly when the first ends.
	detector := schedule.NewDetector(helpers.BaselinePlanningData(t))
	first := transitVoyage("VOY-2026-001", "V-001", "C-001", fixtureDate(30), 48)
	second := transitVoyage("VOY-2026-002", "V-001", "C-002", first.EndDate(), 48)
	result := &schedule.OptimizationResult{Voyages: []*schedule.Voyage{first, second}}

	// Act
	conflicts := detector.Detect(result)

	// Assert
	assert.Empty(t, conflicts)
}

func TestDetector_CapacityViolationIsCritical(t *testing.T) {
	// Arrange: a voyage carrying 12,000 MT on a 10,000 DWT vessel.
	data := helpers.BaselinePlanningData(t)
	data.Commitments = append(data.Commitments, helpers.NewCommitment(t, "C-BIG", 12000, 90))
	detector := schedule.NewDetector(data)

	result := &schedule.OptimizationResult{
		Voyages: []*schedule.Voyage{
			transitVoyage("VOY-2026-001", "V-001", "C-BIG", fixtureDate(91), 48),
		},
	}

	// Act
	conflicts := detector.Detect(result)

	// Assert
	require.Len(t, conflicts, 1)
	assert.Equal(t, schedule.ConflictResourceShortage, conflicts[0].Type)
	assert.Equal(t, schedule.SeverityCritical, conflicts[0].Severity)
	assert.Contains(t, conflicts[0].Description, "DWT")
}

func TestDetector_PortCongestion(t *testing.T) {
	// Arrange: 5,000 MT loaded in a single day at a port whose combined
	// capacity is 4,000 MT/day.
	data := helpers.BaselinePlanningData(t)
	detector := schedule.NewDetector(data)

	voyage := &schedule.Voyage{
		ID:           "VOY-2026-001",
		VesselID:     "V-001",
		CommitmentID: "C-001",
		StartDate:    fixtureDate(30),
		Status:       schedule.VoyageStatusPlanned,
		Legs: []schedule.VoyageLeg{
			{Type: schedule.LegLoading, FromID: "ROTTERDAM", ToID: "ROTTERDAM", DurationHours: 24},
		},
	}
	result := &schedule.OptimizationResult{Voyages: []*schedule.Voyage{voyage}}

	// Act
	conflicts := detector.Detect(result)

	// Assert: one congestion conflict per port, reporting the worst day.
	require.Len(t, conflicts, 1)
	congestion := conflicts[0]
	assert.Equal(t, schedule.ConflictPortCapacity, congestion.Type)
	assert.Equal(t, schedule.SeverityHigh, congestion.Severity)
	assert.Contains(t, congestion.AffectedIDs, "ROTTERDAM")
	assert.Contains(t, congestion.AffectedIDs, "VOY-2026-001")
}

func TestDetector_LoadingBeforeLaycan(t *testing.T) {
	// Arrange: C-001's laycan opens on day 30 but loading starts on day 10.
	data := helpers.BaselinePlanningData(t)
	detector := schedule.NewDetector(data)

	voyage := &schedule.Voyage{
		ID:           "VOY-2026-001",
		VesselID:     "V-001",
		CommitmentID: "C-001",
		StartDate:    fixtureDate(10),
		Status:       schedule.VoyageStatusPlanned,
		Legs: []schedule.VoyageLeg{
			{Type: schedule.LegWaiting, FromID: "ROTTERDAM", ToID: "ROTTERDAM", DurationHours: 12},
			{Type: schedule.LegLoading, FromID: "ROTTERDAM", ToID: "ROTTERDAM", DurationHours: 60},
		},
	}
	result := &schedule.OptimizationResult{Voyages: []*schedule.Voyage{voyage}}

	// Act
	conflicts := detector.Detect(result)

	// Assert
	require.Len(t, conflicts, 1)
	assert.Equal(t, schedule.ConflictCargoTiming, conflicts[0].Type)
	assert.Equal(t, schedule.SeverityMedium, conflicts[0].Severity)
	assert.Contains(t, conflicts[0].Description, "outside laycan")
}

func TestDetector_DischargeAfterDeliveryDeadline(t *testing.T) {
	// Arrange: the deadline falls before the discharge leg completes.
	data := helpers.BaselinePlanningData(t)
	data.Commitments[0].SetDeliveryDeadline(fixtureDate(35))
	detector := schedule.NewDetector(data)

	voyage := &schedule.Voyage{
		ID:           "VOY-2026-001",
		VesselID:     "V-001",
		CommitmentID: "C-001",
		StartDate:    data.Commitments[0].LaycanStart(),
		Status:       schedule.VoyageStatusPlanned,
		Legs: []schedule.VoyageLeg{
			{Type: schedule.LegLoading, FromID: "ROTTERDAM", ToID: "ROTTERDAM", DurationHours: 60},
			{Type: schedule.LegTransit, FromID: "ROTTERDAM", ToID: "HAMBURG", DistanceNM: 1000, DurationHours: 87.5},
			{Type: schedule.LegDischarge, FromID: "HAMBURG", ToID: "HAMBURG", DurationHours: 60},
		},
	}
	result := &schedule.OptimizationResult{Voyages: []*schedule.Voyage{voyage}}

	// Act
	conflicts := detector.Detect(result)

	// Assert
	require.Len(t, conflicts, 1)
	assert.Equal(t, schedule.ConflictCargoTiming, conflicts[0].Type)
	assert.Contains(t, conflicts[0].Description, "delivery deadline")
}

func TestDetector_ResourceShortageSeverity(t *testing.T) {
	// Arrange
	detector := schedule.NewDetector(helpers.BaselinePlanningData(t))
	result := &schedule.OptimizationResult{
		Unassigned: []schedule.UnassignedCommitment{
			{CommitmentID: "C-BIG", Reason: "no vessel with sufficient deadweight", CapableVessels: 0},
			{CommitmentID: "C-LATE", Reason: "no vessel available within the laycan window", CapableVessels: 3},
		},
	}

	// Act
	conflicts := detector.Detect(result)

	// Assert: severity depends on whether more than one vessel could carry it.
	require.Len(t, conflicts, 2)
	assert.Equal(t, schedule.ConflictResourceShortage, conflicts[0].Type)
	assert.Equal(t, schedule.SeverityCritical, conflicts[0].Severity)
	assert.Equal(t, schedule.SeverityHigh, conflicts[1].Severity)
}

func TestDetector_EmptyResult(t *testing.T) {
	detector := schedule.NewDetector(helpers.BaselinePlanningData(t))

	conflicts := detector.Detect(&schedule.OptimizationResult{})

	assert.NotNil(t, conflicts)
	assert.Empty(t, conflicts)
}
