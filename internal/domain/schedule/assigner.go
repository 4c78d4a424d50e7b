package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/finance"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

const (
	// canalTransitHours is the conservative default until a per-canal model
	// is configured.
	canalTransitHours = 24.0

	bunkerStopHours = 6.0
)

// Assigner assigns cargo commitments to vessels across a target year. It is
// a single-pass construction pipeline: commitments in laycan order, one
// shared loop, strategy-specific ranking only.
//
// The loop is strictly sequential: each assignment advances the vessel
// availability state consumed by later assignments. Parallelizing it would
// change results, not speed them up safely.
type Assigner struct {
	calc  *finance.Calculator
	clock shared.Clock
}

// NewAssigner creates an assigner. A nil calculator gets the default port
// cost policy; a nil clock uses system time.
func NewAssigner(calc *finance.Calculator, clock shared.Clock) *Assigner {
	if calc == nil {
		calc = finance.NewCalculator(nil)
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Assigner{calc: calc, clock: clock}
}

// Optimize produces the voyage plan for one strategy. Output is
// deterministic for fixed data, config and strategy: no randomness, no
// wall-clock tie-breaks beyond the declared ones.
func (a *Assigner) Optimize(data *PlanningData, strategy Strategy, cfg Config) (*OptimizationResult, error) {
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	lookup := routing.NewLookup(data.Routes)

	vessels := a.eligibleVessels(data, cfg)
	if len(vessels) == 0 {
		return nil, shared.NewMasterDataError("no active vessels match the run scope")
	}
	commitments := a.runCommitments(data, cfg)

	fleetEntry := time.Date(cfg.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearDays := time.Date(cfg.Year+1, time.January, 1, 0, 0, 0, 0, time.UTC).Sub(fleetEntry).Hours() / 24

	// Engine-local scheduling state, keyed by vessel id. Never process-wide:
	// parallel strategy runs each get their own copies.
	availableAt := make(map[string]time.Time, len(vessels))
	position := make(map[string]string, len(vessels))
	busyHours := make(map[string]float64, len(vessels))
	for _, v := range vessels {
		availableAt[v.ID()] = fleetEntry
		position[v.ID()] = v.CurrentPortID()
	}

	result := &OptimizationResult{
		Strategy:    strategy,
		Year:        cfg.Year,
		Voyages:     []*Voyage{},
		Financials:  []*finance.VoyageFinancial{},
		Conflicts:   []*ScheduleConflict{},
		GeneratedAt: a.clock.Now(),
	}

	seq := 0
	for _, cm := range commitments {
		route, err := lookup.Find(cm.LoadPortID(), cm.DischargePortID())
		if err != nil {
			result.Unassigned = append(result.Unassigned, UnassignedCommitment{
				CommitmentID:   cm.ID(),
				Reason:         fmt.Sprintf("no route between %s and %s", cm.LoadPortID(), cm.DischargePortID()),
				CapableVessels: countCapable(vessels, cm.QuantityMT()),
			})
			continue
		}

		capable := 0
		var cands []*candidate
		for _, v := range vessels {
			if !v.CanCarry(cm.QuantityMT()) {
				continue
			}
			capable++
			if availableAt[v.ID()].After(cm.LaycanEnd()) {
				continue
			}

			fin, calcErr := a.calc.Calculate(v, cm, route, cfg.Params)
			if calcErr != nil {
				// A calculation failure disqualifies this candidate only; it
				// is not fatal to the run.
				continue
			}

			cands = append(cands, &candidate{
				vessel:         v,
				financial:      fin,
				availableAt:    availableAt[v.ID()],
				ballastNM:      ballastDistance(lookup, position[v.ID()], cm.LoadPortID()),
				utilizationPct: busyHours[v.ID()] / 24 / yearDays * 100,
			})
		}

		if len(cands) == 0 {
			reason := "no vessel available within the laycan window"
			if capable == 0 {
				reason = "no vessel with sufficient deadweight"
			}
			result.Unassigned = append(result.Unassigned, UnassignedCommitment{
				CommitmentID:   cm.ID(),
				Reason:         reason,
				CapableVessels: capable,
			})
			continue
		}

		rankCandidates(cands, strategy, cfg.UtilizationTargetPct())
		best := cands[0]

		seq++
		voyage := a.buildVoyage(seq, cfg, data, best, cm, route, lookup, position[best.vessel.ID()])

		best.financial.VoyageID = voyage.ID
		if err := cm.Assign(voyage.ID); err != nil {
			return nil, fmt.Errorf("assigning commitment %s: %w", cm.ID(), err)
		}

		availableAt[best.vessel.ID()] = voyage.EndDate()
		position[best.vessel.ID()] = cm.DischargePortID()
		busyHours[best.vessel.ID()] += voyage.TotalHours()

		result.Voyages = append(result.Voyages, voyage)
		result.Financials = append(result.Financials, best.financial)
	}

	return result, nil
}

// eligibleVessels filters the fleet to the run scope: Active status, module
// filter, optional allow-list. Sorted by id for determinism. Legacy module
// variants are a data filter here, never separate code paths.
func (a *Assigner) eligibleVessels(data *PlanningData, cfg Config) []*fleet.Vessel {
	var allowed map[string]bool
	if len(cfg.Vessels) > 0 {
		allowed = make(map[string]bool, len(cfg.Vessels))
		for _, id := range cfg.Vessels {
			allowed[id] = true
		}
	}

	var out []*fleet.Vessel
	for _, v := range data.Vessels {
		if !v.IsActive() {
			continue
		}
		if cfg.Module != "" && v.Module() != cfg.Module {
			continue
		}
		if allowed != nil && !allowed[v.ID()] {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// runCommitments clones the commitments in scope so caller-supplied inputs
// are never mutated, then orders them by laycan start.
func (a *Assigner) runCommitments(data *PlanningData, cfg Config) []*cargo.Commitment {
	yearStart := time.Date(cfg.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(cfg.Year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	var out []*cargo.Commitment
	for _, cm := range data.Commitments {
		switch cm.Status() {
		case cargo.CommitmentStatusPending:
		case cargo.CommitmentStatusAssigned:
			// Backlog: replanned only when the run asks for it.
			if !cfg.LoadCargoCommitments {
				continue
			}
		default:
			continue
		}
		if cm.LaycanEnd().Before(yearStart) || !cm.LaycanStart().Before(yearEnd) {
			continue
		}
		clone := cm.Clone()
		clone.Reopen()
		out = append(out, clone)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].LaycanStart().Equal(out[j].LaycanStart()) {
			return out[i].LaycanStart().Before(out[j].LaycanStart())
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}

// buildVoyage constructs the voyage leg-set for the winning candidate:
// ballast (when repositioning is needed), waiting, loading, canal (when the
// route transits one), bunker (when fuel-on-board would fall below the
// reserve), transit, waiting, discharge.
func (a *Assigner) buildVoyage(seq int, cfg Config, data *PlanningData, best *candidate, cm *cargo.Commitment, route *routing.Route, lookup *routing.Lookup, fromPortID string) *Voyage {
	params := cfg.Params

	speed := params.SpeedLadenKnots
	if best.vessel.SpeedKnots() > 0 {
		speed = best.vessel.SpeedKnots()
	}
	ballastSpeed := params.SpeedBallastKnots
	if ballastSpeed <= 0 {
		ballastSpeed = speed
	}

	var legs []VoyageLeg

	if cfg.UseTemplates && data.Templates != nil {
		if tmpl, ok := data.Templates[TemplateKey(cm.LoadPortID(), cm.DischargePortID())]; ok {
			legs = append(legs, tmpl...)
		}
	}

	ballastHours := 0.0
	if legs == nil {
		if best.ballastNM > 0 {
			ballastHours = (best.ballastNM / ballastSpeed) * params.WeatherMargin
			legs = append(legs, VoyageLeg{
				Type:          LegBallast,
				FromID:        fromPortID,
				ToID:          cm.LoadPortID(),
				DistanceNM:    best.ballastNM,
				DurationHours: ballastHours,
			})
		}

		seaHours := (route.DistanceNM() / speed) * params.WeatherMargin
		loadHours := cm.QuantityMT() / params.LoadRateMTDay * 24
		dischHours := cm.QuantityMT() / params.DischRateMTDay * 24

		legs = append(legs,
			VoyageLeg{Type: LegWaiting, FromID: cm.LoadPortID(), ToID: cm.LoadPortID(), DurationHours: params.PortWaitingHours},
			VoyageLeg{Type: LegLoading, FromID: cm.LoadPortID(), ToID: cm.LoadPortID(), DurationHours: loadHours},
		)

		if route.CanalTransit() {
			legs = append(legs, VoyageLeg{
				Type:          LegCanal,
				FromID:        route.CanalName(),
				ToID:          route.CanalName(),
				DurationHours: canalTransitHours,
			})
		}

		if needsBunkerStop(params, seaHours, ballastHours) {
			legs = append(legs, VoyageLeg{
				Type:          LegBunker,
				FromID:        cm.LoadPortID(),
				ToID:          cm.LoadPortID(),
				DurationHours: bunkerStopHours,
			})
		}

		legs = append(legs,
			VoyageLeg{Type: LegTransit, FromID: cm.LoadPortID(), ToID: cm.DischargePortID(), DistanceNM: route.DistanceNM(), DurationHours: seaHours},
			VoyageLeg{Type: LegWaiting, FromID: cm.DischargePortID(), ToID: cm.DischargePortID(), DurationHours: params.PortWaitingHours},
			VoyageLeg{Type: LegDischarge, FromID: cm.DischargePortID(), ToID: cm.DischargePortID(), DurationHours: dischHours},
		)
	}

	// Start so loading opens no earlier than the laycan, without idling the
	// vessel before its availability date.
	preHours := 0.0
	for _, leg := range legs {
		if leg.Type == LegLoading {
			break
		}
		preHours += leg.DurationHours
	}
	start := cm.LaycanStart().Add(-time.Duration(preHours * float64(time.Hour)))
	if best.availableAt.After(start) {
		start = best.availableAt
	}

	return &Voyage{
		ID:           fmt.Sprintf("VOY-%d-%03d", cfg.Year, seq),
		VesselID:     best.vessel.ID(),
		CommitmentID: cm.ID(),
		Legs:         legs,
		StartDate:    start,
		Status:       VoyageStatusPlanned,
	}
}

// needsBunkerStop applies the conservative default policy: bunker when the
// projected burn would leave less than the configured reserve on board.
func needsBunkerStop(params *finance.CalculationParams, seaHours, ballastHours float64) bool {
	if params.FuelTankCapMT <= 0 {
		return false
	}
	burn := params.ConsumptionLadenMT*(seaHours/24) + params.ConsumptionBallastMT*(ballastHours/24)
	return burn > params.FuelTankCapMT-params.BunkerReserveMT
}

// ballastDistance resolves the repositioning distance, or 0 when the vessel
// is already at the load port or no lane is on file.
func ballastDistance(lookup *routing.Lookup, fromPortID, loadPortID string) float64 {
	if fromPortID == "" || fromPortID == loadPortID {
		return 0
	}
	r, err := lookup.Find(fromPortID, loadPortID)
	if err != nil {
		return 0
	}
	return r.DistanceNM()
}

func countCapable(vessels []*fleet.Vessel, quantityMT float64) int {
	n := 0
	for _, v := range vessels {
		if v.CanCarry(quantityMT) {
			n++
		}
	}
	return n
}
