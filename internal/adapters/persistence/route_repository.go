package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/avolkov/voyageplan-go/internal/domain/routing"
)

// GormRouteRepository implements RouteRepository using GORM
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// FindAll retrieves the full route reference table
func (r *GormRouteRepository) FindAll(ctx context.Context) ([]*routing.Route, error) {
	var models []RouteModel
	if result := r.db.WithContext(ctx).Order("from_port_id, to_port_id").Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to find routes: %w", result.Error)
	}

	routes := make([]*routing.Route, 0, len(models))
	for _, m := range models {
		route, err := routing.NewRoute(m.FromPortID, m.ToPortID, m.DistanceNM, m.CanalTransit, m.CanalName, m.WeatherRisk)
		if err != nil {
			return nil, fmt.Errorf("failed to convert route %s->%s: %w", m.FromPortID, m.ToPortID, err)
		}
		routes = append(routes, route)
	}
	return routes, nil
}

// Save upserts a route reference record
func (r *GormRouteRepository) Save(ctx context.Context, route *routing.Route) error {
	model := &RouteModel{
		FromPortID:   route.FromPortID(),
		ToPortID:     route.ToPortID(),
		DistanceNM:   route.DistanceNM(),
		CanalTransit: route.CanalTransit(),
		CanalName:    route.CanalName(),
		WeatherRisk:  route.WeatherRisk(),
	}
	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return fmt.Errorf("failed to save route: %w", result.Error)
	}
	return nil
}
