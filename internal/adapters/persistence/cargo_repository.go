package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
)

// GormCargoRepository implements CargoRepository using GORM
type GormCargoRepository struct {
	db *gorm.DB
}

// NewGormCargoRepository creates a new GORM cargo commitment repository
func NewGormCargoRepository(db *gorm.DB) *GormCargoRepository {
	return &GormCargoRepository{db: db}
}

// FindAll retrieves every cargo commitment
func (r *GormCargoRepository) FindAll(ctx context.Context) ([]*cargo.Commitment, error) {
	var models []CargoCommitmentModel
	if result := r.db.WithContext(ctx).Order("laycan_start, id").Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to find cargo commitments: %w", result.Error)
	}
	return r.modelsToEntities(models)
}

// FindPending retrieves the commitments still awaiting assignment
func (r *GormCargoRepository) FindPending(ctx context.Context) ([]*cargo.Commitment, error) {
	var models []CargoCommitmentModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(cargo.CommitmentStatusPending)).
		Order("laycan_start, id").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find pending commitments: %w", result.Error)
	}
	return r.modelsToEntities(models)
}

// Save upserts a cargo commitment
func (r *GormCargoRepository) Save(ctx context.Context, commitment *cargo.Commitment) error {
	model, err := r.entityToModel(commitment)
	if err != nil {
		return fmt.Errorf("failed to convert commitment to model: %w", err)
	}
	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return fmt.Errorf("failed to save commitment: %w", result.Error)
	}
	return nil
}

func (r *GormCargoRepository) modelsToEntities(models []CargoCommitmentModel) ([]*cargo.Commitment, error) {
	commitments := make([]*cargo.Commitment, 0, len(models))
	for _, m := range models {
		entity, err := r.modelToEntity(&m)
		if err != nil {
			return nil, fmt.Errorf("failed to convert commitment %s: %w", m.ID, err)
		}
		commitments = append(commitments, entity)
	}
	return commitments, nil
}

func (r *GormCargoRepository) modelToEntity(model *CargoCommitmentModel) (*cargo.Commitment, error) {
	entity, err := cargo.NewCommitment(model.ID, model.Commodity, model.QuantityMT, model.LoadPortID, model.DischargePortID, model.LaycanStart, model.LaycanEnd)
	if err != nil {
		return nil, err
	}

	if model.DeliveryDeadline != nil {
		entity.SetDeliveryDeadline(*model.DeliveryDeadline)
	}

	if model.CostAllocationsJSON != "" {
		var allocations map[string]float64
		if err := json.Unmarshal([]byte(model.CostAllocationsJSON), &allocations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cost allocations: %w", err)
		}
		entity.SetCostAllocations(allocations)
	}

	// Restore lifecycle state through the entity's own transitions.
	switch cargo.CommitmentStatus(model.Status) {
	case cargo.CommitmentStatusAssigned:
		if err := entity.Assign(model.LaneID); err != nil {
			return nil, fmt.Errorf("failed to restore assigned state: %w", err)
		}
	case cargo.CommitmentStatusCompleted:
		if err := entity.Assign(model.LaneID); err != nil {
			return nil, fmt.Errorf("failed to restore completed state: %w", err)
		}
		if err := entity.Complete(); err != nil {
			return nil, fmt.Errorf("failed to restore completed state: %w", err)
		}
	}

	return entity, nil
}

func (r *GormCargoRepository) entityToModel(c *cargo.Commitment) (*CargoCommitmentModel, error) {
	allocationsJSON := ""
	if c.CostAllocations() != nil {
		raw, err := json.Marshal(c.CostAllocations())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal cost allocations: %w", err)
		}
		allocationsJSON = string(raw)
	}

	return &CargoCommitmentModel{
		ID:                  c.ID(),
		Commodity:           c.Commodity(),
		QuantityMT:          c.QuantityMT(),
		LoadPortID:          c.LoadPortID(),
		DischargePortID:     c.DischargePortID(),
		LaycanStart:         c.LaycanStart(),
		LaycanEnd:           c.LaycanEnd(),
		DeliveryDeadline:    c.DeliveryDeadline(),
		Status:              string(c.Status()),
		LaneID:              c.LaneID(),
		CostAllocationsJSON: allocationsJSON,
	}, nil
}
