package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
)

// Detector scans an assigned schedule for infeasibilities and risk
// conditions. The scan is pure: it never mutates the schedule, and every rule
// is evaluated independently, so one voyage may trigger several conflicts.
type Detector struct {
	ports       map[string]*routing.Port
	commitments map[string]*cargo.Commitment
	vessels     map[string]*fleet.Vessel
}

// NewDetector indexes the master data the rules consult.
func NewDetector(data *PlanningData) *Detector {
	d := &Detector{
		ports:       make(map[string]*routing.Port),
		commitments: make(map[string]*cargo.Commitment),
		vessels:     make(map[string]*fleet.Vessel),
	}
	if data == nil {
		return d
	}
	for _, p := range data.Ports {
		d.ports[p.ID()] = p
	}
	for _, c := range data.Commitments {
		d.commitments[c.ID()] = c
	}
	for _, v := range data.Vessels {
		d.vessels[v.ID()] = v
	}
	return d
}

// Detect returns every conflict found in the result's voyage list. Overlap
// detection is exhaustive: zero false negatives is an invariant the KPI
// scoring depends on.
func (d *Detector) Detect(result *OptimizationResult) []*ScheduleConflict {
	conflicts := []*ScheduleConflict{}
	seq := 0
	next := func() string {
		seq++
		return fmt.Sprintf("CONF-%03d", seq)
	}

	conflicts = append(conflicts, d.detectVesselOverlaps(result, next)...)
	conflicts = append(conflicts, d.detectCapacityViolations(result, next)...)
	conflicts = append(conflicts, d.detectPortCongestion(result, next)...)
	conflicts = append(conflicts, d.detectCargoTiming(result, next)...)
	conflicts = append(conflicts, d.detectResourceShortages(result, next)...)

	return conflicts
}

// detectVesselOverlaps flags every pair of voyages that share a vessel and
// whose date spans intersect.
func (d *Detector) detectVesselOverlaps(result *OptimizationResult, next func() string) []*ScheduleConflict {
	byVessel := make(map[string][]*Voyage)
	for _, v := range result.Voyages {
		if v.VesselID == "" {
			continue
		}
		byVessel[v.VesselID] = append(byVessel[v.VesselID], v)
	}

	vesselIDs := make([]string, 0, len(byVessel))
	for id := range byVessel {
		vesselIDs = append(vesselIDs, id)
	}
	sort.Strings(vesselIDs)

	var out []*ScheduleConflict
	for _, vesselID := range vesselIDs {
		voyages := byVessel[vesselID]
		for i := 0; i < len(voyages); i++ {
			for j := i + 1; j < len(voyages); j++ {
				if !voyages[i].Overlaps(voyages[j]) {
					continue
				}
				out = append(out, &ScheduleConflict{
					ID:       next(),
					Type:     ConflictVesselOverlap,
					Severity: SeverityCritical,
					Description: fmt.Sprintf("vessel %s is double-booked: voyages %s and %s overlap",
						vesselID, voyages[i].ID, voyages[j].ID),
					AffectedIDs: []string{vesselID, voyages[i].ID, voyages[j].ID},
					SuggestedResolution: fmt.Sprintf("shift voyage %s to start after %s ends (%s)",
						voyages[j].ID, voyages[i].ID, voyages[i].EndDate().Format("2006-01-02")),
				})
			}
		}
	}
	return out
}

// detectCapacityViolations double-checks the deadweight invariant: cargo
// assigned above a vessel's DWT is always reported, never clamped.
func (d *Detector) detectCapacityViolations(result *OptimizationResult, next func() string) []*ScheduleConflict {
	var out []*ScheduleConflict
	for _, v := range result.Voyages {
		vessel, okV := d.vessels[v.VesselID]
		cm, okC := d.commitments[v.CommitmentID]
		if !okV || !okC {
			continue
		}
		if vessel.CanCarry(cm.QuantityMT()) {
			continue
		}
		out = append(out, &ScheduleConflict{
			ID:       next(),
			Type:     ConflictResourceShortage,
			Severity: SeverityCritical,
			Description: fmt.Sprintf("voyage %s loads %.0f MT on vessel %s (DWT %.0f MT)",
				v.ID, cm.QuantityMT(), vessel.ID(), vessel.DWT()),
			AffectedIDs:         []string{v.ID, vessel.ID(), cm.ID()},
			SuggestedResolution: "reassign the cargo to a vessel with sufficient deadweight",
		})
	}
	return out
}

// detectPortCongestion flags days where a port's aggregate handled quantity
// across overlapping voyages exceeds its combined load/discharge capacity.
func (d *Detector) detectPortCongestion(result *OptimizationResult, next func() string) []*ScheduleConflict {
	type dayLoad struct {
		mt      float64
		voyages map[string]bool
	}
	perPortDay := make(map[string]map[time.Time]*dayLoad)

	for _, v := range result.Voyages {
		cm, ok := d.commitments[v.CommitmentID]
		if !ok {
			continue
		}
		cursor := v.StartDate
		for _, leg := range v.Legs {
			end := cursor.Add(time.Duration(leg.DurationHours * float64(time.Hour)))
			if leg.Type == LegLoading || leg.Type == LegDischarge {
				days := leg.DurationHours / 24
				if days > 0 {
					daily := cm.QuantityMT() / days
					for day := cursor.Truncate(24 * time.Hour); day.Before(end); day = day.Add(24 * time.Hour) {
						if perPortDay[leg.FromID] == nil {
							perPortDay[leg.FromID] = make(map[time.Time]*dayLoad)
						}
						dl := perPortDay[leg.FromID][day]
						if dl == nil {
							dl = &dayLoad{voyages: make(map[string]bool)}
							perPortDay[leg.FromID][day] = dl
						}
						dl.mt += daily
						dl.voyages[v.ID] = true
					}
				}
			}
			cursor = end
		}
	}

	portIDs := make([]string, 0, len(perPortDay))
	for id := range perPortDay {
		portIDs = append(portIDs, id)
	}
	sort.Strings(portIDs)

	var out []*ScheduleConflict
	for _, portID := range portIDs {
		port, ok := d.ports[portID]
		if !ok || port.DailyCapacityMT() <= 0 {
			continue
		}

		// One conflict per port, reporting the worst day.
		var worstDay time.Time
		var worstMT float64
		affected := make(map[string]bool)
		for day, dl := range perPortDay[portID] {
			if dl.mt <= port.DailyCapacityMT() {
				continue
			}
			if dl.mt > worstMT {
				worstMT = dl.mt
				worstDay = day
			}
			for id := range dl.voyages {
				affected[id] = true
			}
		}
		if worstMT == 0 {
			continue
		}

		ids := []string{portID}
		for id := range affected {
			ids = append(ids, id)
		}
		sort.Strings(ids[1:])

		out = append(out, &ScheduleConflict{
			ID:       next(),
			Type:     ConflictPortCapacity,
			Severity: SeverityHigh,
			Description: fmt.Sprintf("port %s handles %.0f MT on %s, above its %.0f MT/day capacity",
				portID, worstMT, worstDay.Format("2006-01-02"), port.DailyCapacityMT()),
			AffectedIDs:         ids,
			SuggestedResolution: "stagger the overlapping port calls or split the cargo across laycans",
		})
	}
	return out
}

// detectCargoTiming flags voyages whose loading opens outside the laycan
// window or whose discharge completes after a stated delivery deadline.
func (d *Detector) detectCargoTiming(result *OptimizationResult, next func() string) []*ScheduleConflict {
	var out []*ScheduleConflict
	for _, v := range result.Voyages {
		cm, ok := d.commitments[v.CommitmentID]
		if !ok {
			continue
		}

		if loadStart, _, hasLoad := v.LoadingWindow(); hasLoad {
			if loadStart.Before(cm.LaycanStart()) || loadStart.After(cm.LaycanEnd()) {
				out = append(out, &ScheduleConflict{
					ID:       next(),
					Type:     ConflictCargoTiming,
					Severity: SeverityMedium,
					Description: fmt.Sprintf("voyage %s loads %s on %s, outside laycan %s to %s",
						v.ID, cm.ID(), loadStart.Format("2006-01-02"),
						cm.LaycanStart().Format("2006-01-02"), cm.LaycanEnd().Format("2006-01-02")),
					AffectedIDs:         []string{v.ID, cm.ID()},
					SuggestedResolution: "renegotiate the laycan or assign an earlier-available vessel",
				})
			}
		}

		if deadline := cm.DeliveryDeadline(); deadline != nil {
			if _, dischEnd, hasDisch := v.DischargeWindow(); hasDisch && dischEnd.After(*deadline) {
				out = append(out, &ScheduleConflict{
					ID:       next(),
					Type:     ConflictCargoTiming,
					Severity: SeverityMedium,
					Description: fmt.Sprintf("voyage %s completes discharge of %s on %s, after the %s delivery deadline",
						v.ID, cm.ID(), dischEnd.Format("2006-01-02"), deadline.Format("2006-01-02")),
					AffectedIDs:         []string{v.ID, cm.ID()},
					SuggestedResolution: "assign a faster vessel or an earlier laycan slot",
				})
			}
		}
	}
	return out
}

// detectResourceShortages converts the assigner's unassigned records into
// conflicts: critical when at most one vessel in the fleet could carry the
// cargo at all, high otherwise.
func (d *Detector) detectResourceShortages(result *OptimizationResult, next func() string) []*ScheduleConflict {
	var out []*ScheduleConflict
	for _, u := range result.Unassigned {
		severity := SeverityHigh
		if u.CapableVessels <= 1 {
			severity = SeverityCritical
		}
		out = append(out, &ScheduleConflict{
			ID:                  next(),
			Type:                ConflictResourceShortage,
			Severity:            severity,
			Description:         fmt.Sprintf("commitment %s could not be assigned: %s", u.CommitmentID, u.Reason),
			AffectedIDs:         []string{u.CommitmentID},
			SuggestedResolution: "charter additional tonnage or widen the laycan window",
		})
	}
	return out
}
