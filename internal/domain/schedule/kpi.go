package schedule

import (
	"time"

	"github.com/avolkov/voyageplan-go/pkg/utils"
)

// KPISet is the year-level reduction of one result's voyage, financial and
// conflict lists. Totals always derive from the exact set present in the same
// result; there is no stale aggregation.
type KPISet struct {
	TotalVoyages int     `json:"totalVoyages"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
	TotalProfit  float64 `json:"totalProfit"`

	ProfitMargin float64 `json:"profitMargin"`
	AvgTCE       float64 `json:"avgTCE"`

	// FleetUtilization is busy vessel-days over available vessel-days, 0..1.
	FleetUtilization float64 `json:"fleetUtilization"`

	CriticalConflicts int `json:"criticalConflicts"`
	HighConflicts     int `json:"highConflicts"`
	MediumConflicts   int `json:"mediumConflicts"`
	LowConflicts      int `json:"lowConflicts"`

	OptimalityScore float64 `json:"optimalityScore"`
}

// Aggregator reduces a result into its KPI set. Pure: same input, same KPIs.
type Aggregator struct{}

// NewAggregator creates a KPI aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate computes the KPI set for a result. activeVessels is the number of
// vessels in the run scope; it sizes the utilization denominator.
func (a *Aggregator) Aggregate(result *OptimizationResult, activeVessels int, cfg Config) *KPISet {
	kpi := &KPISet{TotalVoyages: len(result.Voyages)}

	var tceSum float64
	for _, f := range result.Financials {
		kpi.TotalRevenue += f.Revenue
		kpi.TotalCost += f.TotalCost
		kpi.TotalProfit += f.Profit
		tceSum += f.TCE
	}

	if kpi.TotalRevenue != 0 {
		kpi.ProfitMargin = kpi.TotalProfit / kpi.TotalRevenue
	}
	if len(result.Financials) > 0 {
		kpi.AvgTCE = tceSum / float64(len(result.Financials))
	}

	yearStart := time.Date(cfg.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearDays := time.Date(cfg.Year+1, time.January, 1, 0, 0, 0, 0, time.UTC).Sub(yearStart).Hours() / 24
	var busyDays float64
	for _, v := range result.Voyages {
		busyDays += v.TotalHours() / 24
	}
	if activeVessels > 0 && yearDays > 0 {
		kpi.FleetUtilization = utils.Clamp(busyDays/(float64(activeVessels)*yearDays), 0, 1)
	}

	for _, c := range result.Conflicts {
		switch c.Severity {
		case SeverityCritical:
			kpi.CriticalConflicts++
		case SeverityHigh:
			kpi.HighConflicts++
		case SeverityMedium:
			kpi.MediumConflicts++
		case SeverityLow:
			kpi.LowConflicts++
		}
	}

	kpi.OptimalityScore = a.optimalityScore(kpi, cfg)
	return kpi
}

// optimalityScore blends margin (0.4), utilization match (0.3) and conflict
// freedom (0.3) into one 0-100 quality figure. Always in range, never NaN,
// including zero-revenue and zero-voyage inputs.
func (a *Aggregator) optimalityScore(kpi *KPISet, cfg Config) float64 {
	marginScore := utils.Clamp(kpi.ProfitMargin*100, 0, 100)

	target := cfg.UtilizationTargetPct()
	utilizationMatch := utils.Clamp(100-absDistance(kpi.FleetUtilization*100, target), 0, 100)

	penalty := float64(10*kpi.CriticalConflicts + 5*kpi.HighConflicts + 2*kpi.MediumConflicts + 1*kpi.LowConflicts)
	conflictFree := utils.Clamp(100-penalty, 0, 100)

	return utils.Clamp(0.4*marginScore+0.3*utilizationMatch+0.3*conflictFree, 0, 100)
}

func absDistance(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
