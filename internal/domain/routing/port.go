package routing

import (
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// Port is read-only reference data describing a load/discharge location.
type Port struct {
	id             string
	name           string
	loadRateMTDay  float64
	dischRateMTDay float64
	waitingHours   float64
	handlesLiquid  bool
	handlesDry     bool
}

// NewPort creates a port after validating its reference fields.
func NewPort(id, name string, loadRateMTDay, dischRateMTDay, waitingHours float64, handlesLiquid, handlesDry bool) (*Port, error) {
	if id == "" {
		return nil, shared.NewValidationError("port.id", "cannot be empty")
	}
	if name == "" {
		return nil, shared.NewValidationError("port.name", "cannot be empty")
	}
	if loadRateMTDay < 0 || dischRateMTDay < 0 {
		return nil, shared.NewValidationError("port.rates", "cannot be negative")
	}
	if waitingHours < 0 {
		return nil, shared.NewValidationError("port.waitingHours", "cannot be negative")
	}

	return &Port{
		id:             id,
		name:           name,
		loadRateMTDay:  loadRateMTDay,
		dischRateMTDay: dischRateMTDay,
		waitingHours:   waitingHours,
		handlesLiquid:  handlesLiquid,
		handlesDry:     handlesDry,
	}, nil
}

func (p *Port) ID() string              { return p.id }
func (p *Port) Name() string            { return p.name }
func (p *Port) LoadRateMTDay() float64  { return p.loadRateMTDay }
func (p *Port) DischRateMTDay() float64 { return p.dischRateMTDay }
func (p *Port) WaitingHours() float64   { return p.waitingHours }
func (p *Port) HandlesLiquid() bool     { return p.handlesLiquid }
func (p *Port) HandlesDry() bool        { return p.handlesDry }

// DailyCapacityMT is the combined load and discharge throughput for one day.
func (p *Port) DailyCapacityMT() float64 {
	return p.loadRateMTDay + p.dischRateMTDay
}
