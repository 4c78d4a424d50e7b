package schedule

import (
	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/finance"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// Strategy is the ranking policy governing which vessel is chosen for which
// cargo. Comparing strategies means one engine run per strategy, never a
// multi-objective solve.
type Strategy string

const (
	StrategyMaxRevenue Strategy = "maxrevenue"
	StrategyMinCost    Strategy = "mincost"
	StrategyBalance    Strategy = "balance"
)

// AllStrategies lists the supported ranking policies in canonical order.
func AllStrategies() []Strategy {
	return []Strategy{StrategyMaxRevenue, StrategyMinCost, StrategyBalance}
}

// ParseStrategy validates a strategy name from an external caller.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMaxRevenue, StrategyMinCost, StrategyBalance:
		return Strategy(s), nil
	}
	return "", shared.NewValidationError("strategy", "unknown strategy: "+s)
}

// Config carries the per-run options recognized by the assigner.
type Config struct {
	Year   int    `json:"year"`
	Module string `json:"module,omitempty"`

	// Vessels is an optional allow-list of vessel ids.
	Vessels []string `json:"vessels,omitempty"`

	OptimizationGoal     Strategy `json:"optimizationGoal"`
	LoadCargoCommitments bool     `json:"loadCargoCommitments"`
	UseTemplates         bool     `json:"useTemplates"`

	// Utilization targets are consumed only by the balance strategy and by
	// the optimality score.
	MinUtilizationPct float64 `json:"minUtilizationPct"`
	MaxUtilizationPct float64 `json:"maxUtilizationPct"`

	Params *finance.CalculationParams `json:"params,omitempty"`
}

// Validate rejects malformed run options before any partial computation.
func (c *Config) Validate() error {
	if c.Year < 1970 || c.Year > 2200 {
		return shared.NewValidationError("config.year", "target year out of range")
	}
	if c.MinUtilizationPct < 0 || c.MaxUtilizationPct > 100 || c.MinUtilizationPct > c.MaxUtilizationPct {
		return shared.NewValidationError("config.utilization", "invalid utilization target range")
	}
	if err := c.Params.Validate(); err != nil {
		return err
	}
	return nil
}

// UtilizationTargetPct is the midpoint of the configured utilization band.
func (c *Config) UtilizationTargetPct() float64 {
	return (c.MinUtilizationPct + c.MaxUtilizationPct) / 2
}

// PlanningData is the read-only master and planning data for one run. The
// engine never mutates these inputs in place; all derived state is run-local.
type PlanningData struct {
	Vessels     []*fleet.Vessel
	Commitments []*cargo.Commitment
	Routes      []*routing.Route
	Ports       []*routing.Port

	// Templates optionally seed voyage legs per "LOADPORT|DISCHPORT" lane
	// instead of computing them from scratch (UseTemplates).
	Templates map[string][]VoyageLeg
}

// Validate ensures the master data a run cannot proceed without is present.
// Missing master data entirely is run-fatal, unlike per-candidate failures.
func (d *PlanningData) Validate() error {
	if d == nil {
		return shared.NewMasterDataError("planning data is nil")
	}
	if len(d.Vessels) == 0 {
		return shared.NewMasterDataError("no vessels in master data")
	}
	if len(d.Routes) == 0 {
		return shared.NewMasterDataError("no routes in master data")
	}
	if len(d.Ports) == 0 {
		return shared.NewMasterDataError("no ports in master data")
	}
	return nil
}

// TemplateKey builds the lane key used by the voyage template index.
func TemplateKey(loadPortID, dischPortID string) string {
	return loadPortID + "|" + dischPortID
}
