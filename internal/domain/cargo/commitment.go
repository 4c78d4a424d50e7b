package cargo

import (
	"time"

	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// CommitmentStatus represents the assignment state of a cargo commitment
type CommitmentStatus string

const (
	CommitmentStatusPending   CommitmentStatus = "Pending"
	CommitmentStatusAssigned  CommitmentStatus = "Assigned"
	CommitmentStatusCompleted CommitmentStatus = "Completed"
)

// Commitment is a contracted cargo lot that must load within its laycan
// window. Only status and laneID mutate, and only through Assign; everything
// else is immutable input owned by planning data.
type Commitment struct {
	id               string
	commodity        string
	quantityMT       float64
	loadPortID       string
	dischargePortID  string
	laycanStart      time.Time
	laycanEnd        time.Time
	deliveryDeadline *time.Time
	status           CommitmentStatus
	laneID           string
	costAllocations  map[string]float64
}

// NewCommitment creates a commitment after validating its planning fields.
func NewCommitment(id, commodity string, quantityMT float64, loadPortID, dischargePortID string, laycanStart, laycanEnd time.Time) (*Commitment, error) {
	if id == "" {
		return nil, shared.NewValidationError("commitment.id", "cannot be empty")
	}
	if commodity == "" {
		return nil, shared.NewValidationError("commitment.commodity", "cannot be empty")
	}
	if quantityMT <= 0 {
		return nil, shared.NewValidationError("commitment.quantityMT", "must be positive")
	}
	if loadPortID == "" || dischargePortID == "" {
		return nil, shared.NewValidationError("commitment.ports", "load and discharge ports are required")
	}
	if laycanStart.IsZero() || laycanEnd.IsZero() {
		return nil, shared.NewValidationError("commitment.laycan", "laycan window is required")
	}
	if laycanEnd.Before(laycanStart) {
		return nil, shared.NewValidationError("commitment.laycan", "laycan end precedes laycan start")
	}

	return &Commitment{
		id:              id,
		commodity:       commodity,
		quantityMT:      quantityMT,
		loadPortID:      loadPortID,
		dischargePortID: dischargePortID,
		laycanStart:     laycanStart,
		laycanEnd:       laycanEnd,
		status:          CommitmentStatusPending,
	}, nil
}

func (c *Commitment) ID() string               { return c.id }
func (c *Commitment) Commodity() string        { return c.commodity }
func (c *Commitment) QuantityMT() float64      { return c.quantityMT }
func (c *Commitment) LoadPortID() string       { return c.loadPortID }
func (c *Commitment) DischargePortID() string  { return c.dischargePortID }
func (c *Commitment) LaycanStart() time.Time   { return c.laycanStart }
func (c *Commitment) LaycanEnd() time.Time     { return c.laycanEnd }
func (c *Commitment) Status() CommitmentStatus { return c.status }
func (c *Commitment) LaneID() string           { return c.laneID }

// DeliveryDeadline returns the optional delivery deadline, or nil.
func (c *Commitment) DeliveryDeadline() *time.Time { return c.deliveryDeadline }

// SetDeliveryDeadline attaches an optional contractual delivery deadline.
func (c *Commitment) SetDeliveryDeadline(t time.Time) {
	c.deliveryDeadline = &t
}

// CostAllocations returns the optional per-head cost allocations.
func (c *Commitment) CostAllocations() map[string]float64 { return c.costAllocations }

// SetCostAllocations attaches optional cost allocations from planning data.
func (c *Commitment) SetCostAllocations(a map[string]float64) {
	c.costAllocations = a
}

// Assign marks the commitment as assigned to a voyage lane. The scheduler is
// the only caller; a commitment cannot be assigned twice.
func (c *Commitment) Assign(laneID string) error {
	if c.status != CommitmentStatusPending {
		return shared.NewValidationError("commitment.status", "commitment "+c.id+" is not pending")
	}
	if laneID == "" {
		return shared.NewValidationError("commitment.laneID", "cannot be empty")
	}
	c.status = CommitmentStatusAssigned
	c.laneID = laneID
	return nil
}

// Complete records that the assigned cargo has been lifted and delivered.
// Completed commitments never re-enter the planning pool.
func (c *Commitment) Complete() error {
	if c.status != CommitmentStatusAssigned {
		return shared.NewValidationError("commitment.status", "commitment "+c.id+" is not assigned")
	}
	c.status = CommitmentStatusCompleted
	return nil
}

// Reopen returns an assigned commitment to the pending pool so a replanning
// run can place it again. Only engine-local clones are ever reopened.
func (c *Commitment) Reopen() {
	c.status = CommitmentStatusPending
	c.laneID = ""
}

// Clone returns an independent copy so parallel strategy runs never share
// mutable assignment state.
func (c *Commitment) Clone() *Commitment {
	cp := *c
	if c.deliveryDeadline != nil {
		d := *c.deliveryDeadline
		cp.deliveryDeadline = &d
	}
	if c.costAllocations != nil {
		cp.costAllocations = make(map[string]float64, len(c.costAllocations))
		for k, v := range c.costAllocations {
			cp.costAllocations[k] = v
		}
	}
	return &cp
}
