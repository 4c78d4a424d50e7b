package finance

import (
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// CalculationParams is a named, versionable parameter set supplied once per
// optimization run and immutable for that run.
type CalculationParams struct {
	Name    string `json:"name"`
	Version int    `json:"version"`

	SpeedLadenKnots   float64 `json:"speedLadenKnots"`
	SpeedBallastKnots float64 `json:"speedBallastKnots"`

	BunkerPriceIFO       float64 `json:"bunkerPriceIFO"`       // $/MT
	ConsumptionLadenMT   float64 `json:"consumptionLadenMT"`   // MT/day at sea, laden
	ConsumptionBallastMT float64 `json:"consumptionBallastMT"` // MT/day at sea, in ballast

	LoadRateMTDay    float64 `json:"loadRateMTDay"`
	DischRateMTDay   float64 `json:"dischRateMTDay"`
	PortWaitingHours float64 `json:"portWaitingHours"`

	WeatherMargin    float64 `json:"weatherMargin"` // multiplier on sea time, e.g. 1.05
	DailyHire        float64 `json:"dailyHire"`     // $/day, fallback when the vessel has no rate
	FreightRatePerMT float64 `json:"freightRatePerMT"`

	PortCallCost    float64 `json:"portCallCost"`    // flat $/call for the default port-cost model
	FuelTankCapMT   float64 `json:"fuelTankCapMT"`   // assumed bunker capacity for leg planning
	BunkerReserveMT float64 `json:"bunkerReserveMT"` // minimum fuel-on-board at destination
}

// Validate checks that every rate the calculator divides by is usable.
func (p *CalculationParams) Validate() error {
	if p == nil {
		return shared.NewValidationError("params", "cannot be nil")
	}
	if p.SpeedLadenKnots <= 0 {
		return shared.NewValidationError("params.speedLadenKnots", "must be positive")
	}
	if p.LoadRateMTDay <= 0 {
		return shared.NewValidationError("params.loadRateMTDay", "must be positive")
	}
	if p.DischRateMTDay <= 0 {
		return shared.NewValidationError("params.dischRateMTDay", "must be positive")
	}
	if p.WeatherMargin < 1 {
		return shared.NewValidationError("params.weatherMargin", "must be >= 1")
	}
	if p.PortWaitingHours < 0 {
		return shared.NewValidationError("params.portWaitingHours", "cannot be negative")
	}
	if p.FreightRatePerMT < 0 {
		return shared.NewValidationError("params.freightRatePerMT", "cannot be negative")
	}
	return nil
}
