package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
)

// GormVesselRepository implements VesselRepository using GORM
type GormVesselRepository struct {
	db *gorm.DB
}

// NewGormVesselRepository creates a new GORM vessel repository
func NewGormVesselRepository(db *gorm.DB) *GormVesselRepository {
	return &GormVesselRepository{db: db}
}

// FindAll retrieves every vessel in master data
func (r *GormVesselRepository) FindAll(ctx context.Context) ([]*fleet.Vessel, error) {
	var models []VesselModel
	if result := r.db.WithContext(ctx).Order("id").Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to find vessels: %w", result.Error)
	}
	return r.modelsToEntities(models)
}

// FindByModule retrieves the vessels belonging to one fleet module
func (r *GormVesselRepository) FindByModule(ctx context.Context, module string) ([]*fleet.Vessel, error) {
	var models []VesselModel
	if result := r.db.WithContext(ctx).Where("module = ?", module).Order("id").Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to find vessels for module %s: %w", module, result.Error)
	}
	return r.modelsToEntities(models)
}

// Save upserts a vessel master-data record
func (r *GormVesselRepository) Save(ctx context.Context, vessel *fleet.Vessel) error {
	model := &VesselModel{
		ID:            vessel.ID(),
		Name:          vessel.Name(),
		Class:         vessel.Class(),
		Module:        vessel.Module(),
		DWT:           vessel.DWT(),
		SpeedKnots:    vessel.SpeedKnots(),
		DailyHireCost: vessel.DailyHireCost(),
		CurrentPortID: vessel.CurrentPortID(),
		Status:        string(vessel.Status()),
	}
	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return fmt.Errorf("failed to save vessel: %w", result.Error)
	}
	return nil
}

func (r *GormVesselRepository) modelsToEntities(models []VesselModel) ([]*fleet.Vessel, error) {
	vessels := make([]*fleet.Vessel, 0, len(models))
	for _, m := range models {
		vessel, err := fleet.NewVessel(m.ID, m.Name, m.Class, m.Module, m.DWT, m.SpeedKnots, m.DailyHireCost, m.CurrentPortID, fleet.VesselStatus(m.Status))
		if err != nil {
			return nil, fmt.Errorf("failed to convert vessel %s: %w", m.ID, err)
		}
		vessels = append(vessels, vessel)
	}
	return vessels, nil
}
