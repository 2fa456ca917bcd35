package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// GormManagerRepository implements manager.ManagerRepository using GORM
type GormManagerRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormManagerRepository creates a new GORM manager repository
func NewGormManagerRepository(db *gorm.DB, clock shared.Clock) *GormManagerRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormManagerRepository{db: db, clock: clock}
}

// FindByID retrieves a manager by ID
func (r *GormManagerRepository) FindByID(ctx context.Context, managerID shared.ManagerID) (*manager.Manager, error) {
	var model ManagerModel
	result := r.db.WithContext(ctx).Where("id = ?", managerID.Value()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(shared.ResourceManager, managerID.String())
		}
		return nil, fmt.Errorf("failed to find manager: %w", result.Error)
	}

	return r.modelToManager(&model)
}

// FindByExternalID retrieves a manager by chat user id
func (r *GormManagerRepository) FindByExternalID(ctx context.Context, externalID string) (*manager.Manager, error) {
	var model ManagerModel
	result := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(shared.ResourceManager, externalID)
		}
		return nil, fmt.Errorf("failed to find manager: %w", result.Error)
	}

	return r.modelToManager(&model)
}

// ListAll retrieves all managers ordered by ID
func (r *GormManagerRepository) ListAll(ctx context.Context) ([]*manager.Manager, error) {
	var models []ManagerModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}

	managers := make([]*manager.Manager, 0, len(models))
	for i := range models {
		m, err := r.modelToManager(&models[i])
		if err != nil {
			continue // Skip invalid managers
		}
		managers = append(managers, m)
	}

	return managers, nil
}

// Add persists a new manager and assigns its ID
func (r *GormManagerRepository) Add(ctx context.Context, m *manager.Manager) error {
	model := &ManagerModel{
		ExternalID: m.ExternalID,
		Name:       m.Name,
		CreatedAt:  r.clock.Now(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add manager: %w", err)
	}

	id, err := shared.NewManagerID(model.ID)
	if err != nil {
		return fmt.Errorf("invalid manager ID assigned: %w", err)
	}
	m.ID = id
	m.CreatedAt = model.CreatedAt
	return nil
}

func (r *GormManagerRepository) modelToManager(model *ManagerModel) (*manager.Manager, error) {
	managerID, err := shared.NewManagerID(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid manager ID in database: %w", err)
	}

	return &manager.Manager{
		ID:         managerID,
		ExternalID: model.ExternalID,
		Name:       model.Name,
		CreatedAt:  model.CreatedAt,
	}, nil
}
