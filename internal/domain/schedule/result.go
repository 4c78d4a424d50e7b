package schedule

import (
	"time"

	"github.com/avolkov/voyageplan-go/internal/domain/finance"
)

// UnassignedCommitment records a commitment the assigner could not place.
// Unassignable cargo degrades to this record plus a resource-shortage
// conflict; it is never silently dropped.
type UnassignedCommitment struct {
	CommitmentID string `json:"commitmentId"`
	Reason       string `json:"reason"`

	// CapableVessels counts fleet vessels whose deadweight could carry the
	// cargo at all, regardless of availability. Drives conflict severity.
	CapableVessels int `json:"capableVessels"`
}

// OptimizationResult is the unit of engine output and of persistence: one
// strategy, one voyage list, one conflict list, one KPI set.
type OptimizationResult struct {
	Strategy   Strategy                   `json:"strategy"`
	Year       int                        `json:"year"`
	Voyages    []*Voyage                  `json:"voyages"`
	Financials []*finance.VoyageFinancial `json:"financials"`
	Conflicts  []*ScheduleConflict        `json:"conflicts"`
	Unassigned []UnassignedCommitment     `json:"unassigned,omitempty"`

	KPIs            *KPISet   `json:"kpis,omitempty"`
	OptimalityScore float64   `json:"optimalityScore"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

// FinancialFor returns the financial paired with a voyage, or nil.
// Every voyage in a result has exactly one financial.
func (r *OptimizationResult) FinancialFor(voyageID string) *finance.VoyageFinancial {
	for _, f := range r.Financials {
		if f.VoyageID == voyageID {
			return f
		}
	}
	return nil
}
