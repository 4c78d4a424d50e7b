package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "voyageplan"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "voyageplan"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Server defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Server.RateLimit.Requests == 0 {
		cfg.Server.RateLimit.Requests = 20
	}
	if cfg.Server.RateLimit.Burst == 0 {
		cfg.Server.RateLimit.Burst = 40
	}

	// Engine defaults
	if cfg.Engine.DefaultStrategy == "" {
		cfg.Engine.DefaultStrategy = "maxrevenue"
	}
	if cfg.Engine.MinUtilizationPct == 0 {
		cfg.Engine.MinUtilizationPct = 60
	}
	if cfg.Engine.MaxUtilizationPct == 0 {
		cfg.Engine.MaxUtilizationPct = 85
	}
	setParamsDefaults(&cfg.Engine.Params)

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// setParamsDefaults fills the baseline voyage economics used when a run
// supplies no parameter set of its own.
func setParamsDefaults(p *ParamsConfig) {
	if p.Name == "" {
		p.Name = "baseline"
	}
	if p.Version == 0 {
		p.Version = 1
	}
	if p.SpeedLadenKnots == 0 {
		p.SpeedLadenKnots = 14
	}
	if p.SpeedBallastKnots == 0 {
		p.SpeedBallastKnots = 15
	}
	if p.BunkerPriceIFO == 0 {
		p.BunkerPriceIFO = 500
	}
	if p.ConsumptionLadenMT == 0 {
		p.ConsumptionLadenMT = 30
	}
	if p.ConsumptionBallastMT == 0 {
		p.ConsumptionBallastMT = 25
	}
	if p.LoadRateMTDay == 0 {
		p.LoadRateMTDay = 2000
	}
	if p.DischRateMTDay == 0 {
		p.DischRateMTDay = 2000
	}
	if p.PortWaitingHours == 0 {
		p.PortWaitingHours = 12
	}
	if p.WeatherMargin == 0 {
		p.WeatherMargin = 1.05
	}
	if p.DailyHire == 0 {
		p.DailyHire = 10000
	}
	if p.FreightRatePerMT == 0 {
		p.FreightRatePerMT = 20
	}
	if p.PortCallCost == 0 {
		p.PortCallCost = 15000
	}
	if p.FuelTankCapMT == 0 {
		p.FuelTankCapMT = 1500
	}
	if p.BunkerReserveMT == 0 {
		p.BunkerReserveMT = 150
	}
}
