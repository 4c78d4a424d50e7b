package helpers

import (
	"testing"
	"time"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/finance"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
)

// FixtureYear is the planning year the canned data targets.
const FixtureYear = 2026

// NewVessel builds a valid vessel, failing the test on constructor errors.
func NewVessel(t *testing.T, id string, dwt, speedKnots, dailyHire float64) *fleet.Vessel {
	t.Helper()
	v, err := fleet.NewVessel(id, "MV "+id, "handysize", "", dwt, speedKnots, dailyHire, "ROTTERDAM", fleet.VesselStatusActive)
	if err != nil {
		t.Fatalf("failed to build vessel %s: %v", id, err)
	}
	return v
}

// NewCommitment builds a valid commitment with a laycan inside FixtureYear.
func NewCommitment(t *testing.T, id string, quantityMT float64, laycanStartDay int) *cargo.Commitment {
	t.Helper()
	start := time.Date(FixtureYear, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, laycanStartDay)
	c, err := cargo.NewCommitment(id, "crude", quantityMT, "ROTTERDAM", "HAMBURG", start, start.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("failed to build commitment %s: %v", id, err)
	}
	return c
}

// BaselineParams returns the parameter set used across the fixture scenario:
// freight $20/MT, bunker $500/MT at 30 MT/day, 2,000 MT/day port rates,
// 12h waiting, 1.05 weather margin.
func BaselineParams() *finance.CalculationParams {
	return &finance.CalculationParams{
		Name:                 "fixture",
		Version:              1,
		SpeedLadenKnots:      12,
		SpeedBallastKnots:    12,
		BunkerPriceIFO:       500,
		ConsumptionLadenMT:   30,
		ConsumptionBallastMT: 25,
		LoadRateMTDay:        2000,
		DischRateMTDay:       2000,
		PortWaitingHours:     12,
		WeatherMargin:        1.05,
		DailyHire:            10000,
		FreightRatePerMT:     20,
		PortCallCost:         15000,
		FuelTankCapMT:        1500,
		BunkerReserveMT:      150,
	}
}

// BaselinePlanningData returns the reference scenario: three identical
// 10,000 DWT vessels at Rotterdam, two commitments (5,000 MT and 4,000 MT)
// on the same 1,000 nm Rotterdam-Hamburg lane.
func BaselinePlanningData(t *testing.T) *schedule.PlanningData {
	t.Helper()

	vessels := []*fleet.Vessel{
		NewVessel(t, "V-001", 10000, 12, 10000),
		NewVessel(t, "V-002", 10000, 12, 10000),
		NewVessel(t, "V-003", 10000, 12, 10000),
	}

	commitments := []*cargo.Commitment{
		NewCommitment(t, "C-001", 5000, 30),
		NewCommitment(t, "C-002", 4000, 60),
	}

	route, err := routing.NewRoute("ROTTERDAM", "HAMBURG", 1000, false, "", "low")
	if err != nil {
		t.Fatalf("failed to build route: %v", err)
	}

	rotterdam, err := routing.NewPort("ROTTERDAM", "Rotterdam", 2000, 2000, 12, true, true)
	if err != nil {
		t.Fatalf("failed to build port: %v", err)
	}
	hamburg, err := routing.NewPort("HAMBURG", "Hamburg", 2000, 2000, 12, true, true)
	if err != nil {
		t.Fatalf("failed to build port: %v", err)
	}

	return &schedule.PlanningData{
		Vessels:     vessels,
		Commitments: commitments,
		Routes:      []*routing.Route{route},
		Ports:       []*routing.Port{rotterdam, hamburg},
	}
}

// BaselineConfig returns run options matching BaselinePlanningData.
func BaselineConfig(strategy schedule.Strategy) schedule.Config {
	return schedule.Config{
		Year:              FixtureYear,
		OptimizationGoal:  strategy,
		MinUtilizationPct: 60,
		MaxUtilizationPct: 85,
		Params:            BaselineParams(),
	}
}
