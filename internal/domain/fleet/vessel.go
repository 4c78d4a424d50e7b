package fleet

import (
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// VesselStatus represents the operational status of a vessel
type VesselStatus string

const (
	VesselStatusActive   VesselStatus = "Active"
	VesselStatusPending  VesselStatus = "Pending"
	VesselStatusInactive VesselStatus = "Inactive"
)

// Vessel is a fleet unit available for cargo assignment. It is immutable for
// the duration of an optimization run; master data owns its lifecycle.
type Vessel struct {
	id            string
	name          string
	class         string
	module        string
	dwt           float64
	speedKnots    float64
	dailyHireCost float64
	currentPortID string
	status        VesselStatus
}

// NewVessel creates a vessel after validating its master-data fields.
func NewVessel(id, name, class, module string, dwt, speedKnots, dailyHireCost float64, currentPortID string, status VesselStatus) (*Vessel, error) {
	if id == "" {
		return nil, shared.NewValidationError("vessel.id", "cannot be empty")
	}
	if name == "" {
		return nil, shared.NewValidationError("vessel.name", "cannot be empty")
	}
	if dwt <= 0 {
		return nil, shared.NewValidationError("vessel.dwt", "must be positive")
	}
	if speedKnots <= 0 {
		return nil, shared.NewValidationError("vessel.speedKnots", "must be positive")
	}
	if dailyHireCost < 0 {
		return nil, shared.NewValidationError("vessel.dailyHireCost", "cannot be negative")
	}
	switch status {
	case VesselStatusActive, VesselStatusPending, VesselStatusInactive:
	default:
		return nil, shared.NewValidationError("vessel.status", "unknown status: "+string(status))
	}

	return &Vessel{
		id:            id,
		name:          name,
		class:         class,
		module:        module,
		dwt:           dwt,
		speedKnots:    speedKnots,
		dailyHireCost: dailyHireCost,
		currentPortID: currentPortID,
		status:        status,
	}, nil
}

func (v *Vessel) ID() string             { return v.id }
func (v *Vessel) Name() string           { return v.name }
func (v *Vessel) Class() string          { return v.class }
func (v *Vessel) Module() string         { return v.module }
func (v *Vessel) DWT() float64           { return v.dwt }
func (v *Vessel) SpeedKnots() float64    { return v.speedKnots }
func (v *Vessel) DailyHireCost() float64 { return v.dailyHireCost }
func (v *Vessel) CurrentPortID() string  { return v.currentPortID }
func (v *Vessel) Status() VesselStatus   { return v.status }

// IsActive reports whether the vessel can take new assignments.
func (v *Vessel) IsActive() bool {
	return v.status == VesselStatusActive
}

// CanCarry reports whether a cargo quantity fits within the vessel's deadweight.
func (v *Vessel) CanCarry(quantityMT float64) bool {
	return quantityMT <= v.dwt
}
