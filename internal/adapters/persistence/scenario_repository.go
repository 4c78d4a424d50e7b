package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// GormScenarioRepository implements ScenarioRepository using GORM
type GormScenarioRepository struct {
	db *gorm.DB
}

// NewGormScenarioRepository creates a new GORM scenario repository
func NewGormScenarioRepository(db *gorm.DB) *GormScenarioRepository {
	return &GormScenarioRepository{db: db}
}

// Save upserts a scenario snapshot. The whole record is replaced in one
// write; concurrent saves to the same id serialize at the database with
// last-writer-wins, never interleaved partial writes.
func (r *GormScenarioRepository) Save(ctx context.Context, scenario *common.Scenario) error {
	if scenario == nil || scenario.ID == "" {
		return shared.NewValidationError("scenario.id", "cannot be empty")
	}
	if scenario.Result == nil {
		return shared.NewValidationError("scenario.result", "cannot be nil")
	}

	model, err := r.entityToModel(scenario)
	if err != nil {
		return fmt.Errorf("failed to convert scenario to model: %w", err)
	}

	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return fmt.Errorf("failed to save scenario: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a scenario by id
func (r *GormScenarioRepository) FindByID(ctx context.Context, id string) (*common.Scenario, error) {
	var model ScenarioModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("scenario", id)
		}
		return nil, fmt.Errorf("failed to find scenario: %w", result.Error)
	}
	return r.modelToEntity(&model)
}

// List retrieves summary fields for every stored scenario
func (r *GormScenarioRepository) List(ctx context.Context) ([]*common.ScenarioSummary, error) {
	var models []ScenarioModel
	result := r.db.WithContext(ctx).
		Select("id", "strategy", "optimality_score", "created_at").
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", result.Error)
	}

	summaries := make([]*common.ScenarioSummary, 0, len(models))
	for _, m := range models {
		summaries = append(summaries, &common.ScenarioSummary{
			ID:              m.ID,
			Strategy:        m.Strategy,
			OptimalityScore: m.OptimalityScore,
			CreatedAt:       m.CreatedAt,
		})
	}
	return summaries, nil
}

// Delete removes a scenario by id, reporting not-found as a typed error
func (r *GormScenarioRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ScenarioModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete scenario: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("scenario", id)
	}
	return nil
}

// modelToEntity converts database model to the scenario snapshot
func (r *GormScenarioRepository) modelToEntity(model *ScenarioModel) (*common.Scenario, error) {
	var result schedule.OptimizationResult
	if err := json.Unmarshal([]byte(model.ResultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario result: %w", err)
	}

	var metadata map[string]string
	if model.MetadataJSON != "" {
		if err := json.Unmarshal([]byte(model.MetadataJSON), &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scenario metadata: %w", err)
		}
	}

	return &common.Scenario{
		ID:        model.ID,
		Result:    &result,
		Metadata:  metadata,
		CreatedAt: model.CreatedAt,
	}, nil
}

// entityToModel converts the scenario snapshot to its database model
func (r *GormScenarioRepository) entityToModel(scenario *common.Scenario) (*ScenarioModel, error) {
	resultJSON, err := json.Marshal(scenario.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario result: %w", err)
	}

	metadataJSON := ""
	if scenario.Metadata != nil {
		raw, err := json.Marshal(scenario.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal scenario metadata: %w", err)
		}
		metadataJSON = string(raw)
	}

	return &ScenarioModel{
		ID:              scenario.ID,
		Strategy:        string(scenario.Result.Strategy),
		OptimalityScore: scenario.Result.OptimalityScore,
		ResultJSON:      string(resultJSON),
		MetadataJSON:    metadataJSON,
		CreatedAt:       scenario.CreatedAt,
	}, nil
}
