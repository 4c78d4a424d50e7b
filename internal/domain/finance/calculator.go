package finance

import (
	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
	"github.com/avolkov/voyageplan-go/pkg/utils"
)

// Calculator computes voyage economics for one (vessel, cargo, route) triple.
// It is pure and deterministic: no side effects, identical inputs yield
// identical results.
type Calculator struct {
	portCost PortCostFn
}

// NewCalculator creates a calculator. A nil portCost falls back to the flat
// two-calls estimate.
func NewCalculator(portCost PortCostFn) *Calculator {
	if portCost == nil {
		portCost = FlatPortCost
	}
	return &Calculator{portCost: portCost}
}

// Calculate produces the financial figures for a single voyage leg-set.
//
// Failures are explicit errors, never zero-filled results: a silent zero here
// would corrupt KPI aggregation undetectably.
func (c *Calculator) Calculate(vessel *fleet.Vessel, commitment *cargo.Commitment, route *routing.Route, params *CalculationParams) (*VoyageFinancial, error) {
	if vessel == nil {
		return nil, shared.NewValidationError("vessel", "cannot be nil")
	}
	if commitment == nil {
		return nil, shared.NewValidationError("cargo", "cannot be nil")
	}
	if route == nil {
		return nil, shared.NewValidationError("route", "cannot be nil")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if route.DistanceNM() <= 0 {
		return nil, shared.NewValidationError("route.distanceNM", "must be positive")
	}
	if commitment.QuantityMT() <= 0 {
		return nil, shared.NewValidationError("cargo.quantityMT", "must be positive")
	}

	speed := params.SpeedLadenKnots
	if vessel.SpeedKnots() > 0 {
		speed = vessel.SpeedKnots()
	}
	dailyHire := params.DailyHire
	if vessel.DailyHireCost() > 0 {
		dailyHire = vessel.DailyHireCost()
	}

	seaHours := (route.DistanceNM() / speed) * params.WeatherMargin
	seaDays := seaHours / 24

	loadDays := commitment.QuantityMT() / params.LoadRateMTDay
	dischDays := commitment.QuantityMT() / params.DischRateMTDay
	portDays := loadDays + dischDays + 2*(params.PortWaitingHours/24)

	totalDays := seaDays + portDays

	// Rounding happens once, at the boundary; intermediate figures stay exact.
	revenue := utils.RoundMoney(commitment.QuantityMT() * params.FreightRatePerMT)
	bunkerCost := utils.RoundMoney(params.ConsumptionLadenMT * seaDays * params.BunkerPriceIFO)
	hireCost := utils.RoundMoney(dailyHire * totalDays)
	portCost := utils.RoundMoney(c.portCost(commitment, route, params))

	totalCost := bunkerCost + hireCost + portCost
	profit := revenue - totalCost

	// TCE excludes hire: net revenue per voyage day. Degenerate zero-day
	// voyages yield TCE 0 rather than NaN; the caller surfaces the degenerate
	// input as a validation failure.
	var tce float64
	if totalDays > 0 {
		tce = utils.RoundMoney((revenue - bunkerCost - portCost) / totalDays)
	}

	return &VoyageFinancial{
		VesselID:        vessel.ID(),
		CommitmentID:    commitment.ID(),
		CargoQuantityMT: commitment.QuantityMT(),
		DistanceNM:      route.DistanceNM(),
		SeaDays:         seaDays,
		PortDays:        portDays,
		TotalVoyageDays: totalDays,
		Revenue:         revenue,
		BunkerCost:      bunkerCost,
		HireCost:        hireCost,
		PortCost:        portCost,
		TotalCost:       totalCost,
		TCE:             tce,
		Profit:          profit,
	}, nil
}
