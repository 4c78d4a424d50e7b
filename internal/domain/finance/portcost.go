package finance

import (
	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
)

// PortCostFn estimates total port charges for one voyage leg-set. The
// estimate policy is pluggable so a berth-fee or congestion model can replace
// the default without touching the assigner.
type PortCostFn func(c *cargo.Commitment, r *routing.Route, params *CalculationParams) float64

// FlatPortCost is the default policy: two port calls at a flat per-call rate.
func FlatPortCost(_ *cargo.Commitment, _ *routing.Route, params *CalculationParams) float64 {
	return 2 * params.PortCallCost
}
