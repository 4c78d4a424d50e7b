package schedule

import "time"

// VoyageStatus represents a voyage's lifecycle state.
type VoyageStatus string

const (
	VoyageStatusPlanned   VoyageStatus = "planned"
	VoyageStatusActive    VoyageStatus = "active"
	VoyageStatusCompleted VoyageStatus = "completed"
)

// Voyage is one assigned trip produced by the assigner. A voyage belongs to
// the run that created it and is never mutated afterwards; a new run produces
// new voyages.
type Voyage struct {
	ID           string       `json:"id"`
	VesselID     string       `json:"vesselId,omitempty"`
	CommitmentID string       `json:"commitmentId,omitempty"`
	Legs         []VoyageLeg  `json:"legs"`
	StartDate    time.Time    `json:"startDate"`
	Status       VoyageStatus `json:"status"`
}

// TotalHours is the summed duration of all legs.
func (v *Voyage) TotalHours() float64 {
	var h float64
	for _, leg := range v.Legs {
		h += leg.DurationHours
	}
	return h
}

// TotalDistanceNM is the summed distance of all legs.
func (v *Voyage) TotalDistanceNM() float64 {
	var d float64
	for _, leg := range v.Legs {
		d += leg.DistanceNM
	}
	return d
}

// EndDate is the voyage start plus the duration of every leg.
func (v *Voyage) EndDate() time.Time {
	return v.StartDate.Add(time.Duration(v.TotalHours() * float64(time.Hour)))
}

// Overlaps reports whether two voyages' [start, end] spans intersect.
func (v *Voyage) Overlaps(other *Voyage) bool {
	return v.StartDate.Before(other.EndDate()) && other.StartDate.Before(v.EndDate())
}

// legWindow returns the absolute time window of the first leg matching t.
func (v *Voyage) legWindow(t LegType) (time.Time, time.Time, bool) {
	cursor := v.StartDate
	for _, leg := range v.Legs {
		next := cursor.Add(time.Duration(leg.DurationHours * float64(time.Hour)))
		if leg.Type == t {
			return cursor, next, true
		}
		cursor = next
	}
	return time.Time{}, time.Time{}, false
}

// LoadingWindow returns the absolute window of the loading leg.
func (v *Voyage) LoadingWindow() (time.Time, time.Time, bool) {
	return v.legWindow(LegLoading)
}

// DischargeWindow returns the absolute window of the discharge leg.
func (v *Voyage) DischargeWindow() (time.Time, time.Time, bool) {
	return v.legWindow(LegDischarge)
}
