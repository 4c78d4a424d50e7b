package schedule

import (
	"sort"
	"time"

	"github.com/avolkov/voyageplan-go/internal/domain/finance"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/pkg/utils"
)

// candidate is one feasible (vessel, cargo) pairing under evaluation for a
// single commitment.
type candidate struct {
	vessel      *fleet.Vessel
	financial   *finance.VoyageFinancial
	availableAt time.Time
	ballastNM   float64

	// utilizationPct is the vessel's busy share of the planning year so far,
	// consumed only by the balance strategy.
	utilizationPct float64
}

func (c *candidate) totalDistanceNM() float64 {
	return c.ballastNM + c.financial.DistanceNM
}

// rankCandidates orders candidates best-first for the given strategy. Every
// comparison ends in a vessel-id tie-break so the ordering is total and the
// run stays deterministic.
func rankCandidates(cands []*candidate, strategy Strategy, targetUtilizationPct float64) {
	switch strategy {
	case StrategyMinCost:
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].financial.TotalCost != cands[j].financial.TotalCost {
				return cands[i].financial.TotalCost < cands[j].financial.TotalCost
			}
			if cands[i].totalDistanceNM() != cands[j].totalDistanceNM() {
				return cands[i].totalDistanceNM() < cands[j].totalDistanceNM()
			}
			return cands[i].vessel.ID() < cands[j].vessel.ID()
		})

	case StrategyBalance:
		scores := balanceScores(cands, targetUtilizationPct)
		sort.SliceStable(cands, func(i, j int) bool {
			if scores[cands[i].vessel.ID()] != scores[cands[j].vessel.ID()] {
				return scores[cands[i].vessel.ID()] > scores[cands[j].vessel.ID()]
			}
			return cands[i].vessel.ID() < cands[j].vessel.ID()
		})

	default: // StrategyMaxRevenue
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].financial.Revenue != cands[j].financial.Revenue {
				return cands[i].financial.Revenue > cands[j].financial.Revenue
			}
			if !cands[i].availableAt.Equal(cands[j].availableAt) {
				return cands[i].availableAt.Before(cands[j].availableAt)
			}
			return cands[i].vessel.ID() < cands[j].vessel.ID()
		})
	}
}

// balanceScores blends normalized profit margin (0.6) with closeness to the
// utilization target (0.4), per vessel id.
func balanceScores(cands []*candidate, targetUtilizationPct float64) map[string]float64 {
	minMargin, maxMargin := 0.0, 0.0
	margins := make([]float64, len(cands))
	for i, c := range cands {
		m := 0.0
		if c.financial.Revenue != 0 {
			m = c.financial.Profit / c.financial.Revenue
		}
		margins[i] = m
		if i == 0 || m < minMargin {
			minMargin = m
		}
		if i == 0 || m > maxMargin {
			maxMargin = m
		}
	}

	scores := make(map[string]float64, len(cands))
	for i, c := range cands {
		normMargin := 0.5
		if maxMargin > minMargin {
			normMargin = (margins[i] - minMargin) / (maxMargin - minMargin)
		}
		closeness := 1 - utils.Clamp(absFloat(c.utilizationPct-targetUtilizationPct)/100, 0, 1)
		scores[c.vessel.ID()] = 0.6*normMargin + 0.4*closeness
	}
	return scores
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
