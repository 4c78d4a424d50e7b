package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/avolkov/voyageplan-go/internal/domain/routing"
)

// GormPortRepository implements PortRepository using GORM
type GormPortRepository struct {
	db *gorm.DB
}

// NewGormPortRepository creates a new GORM port repository
func NewGormPortRepository(db *gorm.DB) *GormPortRepository {
	return &GormPortRepository{db: db}
}

// FindAll retrieves the full port reference table
func (r *GormPortRepository) FindAll(ctx context.Context) ([]*routing.Port, error) {
	var models []PortModel
	if result := r.db.WithContext(ctx).Order("id").Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to find ports: %w", result.Error)
	}

	ports := make([]*routing.Port, 0, len(models))
	for _, m := range models {
		port, err := routing.NewPort(m.ID, m.Name, m.LoadRateMTDay, m.DischRateMTDay, m.WaitingHours, m.HandlesLiquid, m.HandlesDry)
		if err != nil {
			return nil, fmt.Errorf("failed to convert port %s: %w", m.ID, err)
		}
		ports = append(ports, port)
	}
	return ports, nil
}

// Save upserts a port reference record
func (r *GormPortRepository) Save(ctx context.Context, port *routing.Port) error {
	model := &PortModel{
		ID:             port.ID(),
		Name:           port.Name(),
		LoadRateMTDay:  port.LoadRateMTDay(),
		DischRateMTDay: port.DischRateMTDay(),
		WaitingHours:   port.WaitingHours(),
		HandlesLiquid:  port.HandlesLiquid(),
		HandlesDry:     port.HandlesDry(),
	}
	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return fmt.Errorf("failed to save port: %w", result.Error)
	}
	return nil
}
