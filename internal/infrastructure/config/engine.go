package config

import (
	"github.com/avolkov/voyageplan-go/internal/domain/finance"
)

// EngineConfig holds the planning defaults applied when a request does not
// supply its own run options or calculation parameters.
type EngineConfig struct {
	// Default ranking strategy: maxrevenue, mincost, balance
	DefaultStrategy string `mapstructure:"default_strategy" validate:"required,oneof=maxrevenue mincost balance"`

	// Fleet utilization band targeted by the balance strategy and scored
	// by the optimality KPI
	MinUtilizationPct float64 `mapstructure:"min_utilization_pct" validate:"min=0,max=100"`
	MaxUtilizationPct float64 `mapstructure:"max_utilization_pct" validate:"min=0,max=100"`

	Params ParamsConfig `mapstructure:"params"`
}

// ParamsConfig mirrors the calculation parameter set so defaults can be set
// through the config file or VP_ENGINE_PARAMS_* environment variables.
type ParamsConfig struct {
	Name    string `mapstructure:"name"`
	Version int    `mapstructure:"version"`

	SpeedLadenKnots   float64 `mapstructure:"speed_laden_knots" validate:"min=0"`
	SpeedBallastKnots float64 `mapstructure:"speed_ballast_knots" validate:"min=0"`

	BunkerPriceIFO       float64 `mapstructure:"bunker_price_ifo" validate:"min=0"`
	ConsumptionLadenMT   float64 `mapstructure:"consumption_laden_mt" validate:"min=0"`
	ConsumptionBallastMT float64 `mapstructure:"consumption_ballast_mt" validate:"min=0"`

	LoadRateMTDay    float64 `mapstructure:"load_rate_mt_day" validate:"min=0"`
	DischRateMTDay   float64 `mapstructure:"disch_rate_mt_day" validate:"min=0"`
	PortWaitingHours float64 `mapstructure:"port_waiting_hours" validate:"min=0"`

	WeatherMargin    float64 `mapstructure:"weather_margin"`
	DailyHire        float64 `mapstructure:"daily_hire" validate:"min=0"`
	FreightRatePerMT float64 `mapstructure:"freight_rate_per_mt" validate:"min=0"`

	PortCallCost    float64 `mapstructure:"port_call_cost" validate:"min=0"`
	FuelTankCapMT   float64 `mapstructure:"fuel_tank_cap_mt" validate:"min=0"`
	BunkerReserveMT float64 `mapstructure:"bunker_reserve_mt" validate:"min=0"`
}

// ToParams converts the configured defaults into the domain parameter set.
func (p *ParamsConfig) ToParams() *finance.CalculationParams {
	return &finance.CalculationParams{
		Name:                 p.Name,
		Version:              p.Version,
		SpeedLadenKnots:      p.SpeedLadenKnots,
		SpeedBallastKnots:    p.SpeedBallastKnots,
		BunkerPriceIFO:       p.BunkerPriceIFO,
		ConsumptionLadenMT:   p.ConsumptionLadenMT,
		ConsumptionBallastMT: p.ConsumptionBallastMT,
		LoadRateMTDay:        p.LoadRateMTDay,
		DischRateMTDay:       p.DischRateMTDay,
		PortWaitingHours:     p.PortWaitingHours,
		WeatherMargin:        p.WeatherMargin,
		DailyHire:            p.DailyHire,
		FreightRatePerMT:     p.FreightRatePerMT,
		PortCallCost:         p.PortCallCost,
		FuelTankCapMT:        p.FuelTankCapMT,
		BunkerReserveMT:      p.BunkerReserveMT,
	}
}
