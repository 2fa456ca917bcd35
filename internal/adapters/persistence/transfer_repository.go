package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

// GormTransferRepository implements transfer.TransferRepository using GORM
type GormTransferRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormTransferRepository creates a new GORM transfer repository.
// A nil clock means the real system clock.
func NewGormTransferRepository(db *gorm.DB, clock shared.Clock) *GormTransferRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormTransferRepository{db: db, clock: clock}
}

// Get retrieves the first request matching the filter
func (r *GormTransferRepository) Get(ctx context.Context, filter transfer.Filter) (*transfer.TransferRequest, error) {
	var model TransferModel
	result := applyFilter(r.db.WithContext(ctx), filter).Order("priority ASC").First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(shared.ResourceTransfer, filterKey(filter))
		}
		return nil, fmt.Errorf("failed to find transfer: %w", result.Error)
	}

	return r.modelToTransfer(&model)
}

// List retrieves matching requests ordered by priority
func (r *GormTransferRepository) List(ctx context.Context, filter transfer.Filter) ([]*transfer.TransferRequest, error) {
	var models []TransferModel
	result := applyFilter(r.db.WithContext(ctx), filter).Order("priority ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", result.Error)
	}

	requests := make([]*transfer.TransferRequest, 0, len(models))
	for i := range models {
		req, err := r.modelToTransfer(&models[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// Count returns the number of matching requests
func (r *GormTransferRepository) Count(ctx context.Context, filter transfer.Filter) (int, error) {
	var count int64
	result := applyFilter(r.db.WithContext(ctx).Model(&TransferModel{}), filter).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count transfers: %w", result.Error)
	}
	return int(count), nil
}

// Insert persists a request at the priority it carries
func (r *GormTransferRepository) Insert(ctx context.Context, request *transfer.TransferRequest) error {
	model := r.newModel(request, request.Priority)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	request.ID = model.ID
	request.CreatedAt = model.CreatedAt
	return nil
}

// Append atomically counts the manager's requests and inserts at the end of the queue
// when the count is below limit.
func (r *GormTransferRepository) Append(ctx context.Context, request *transfer.TransferRequest, limit int) (bool, error) {
	var model *TransferModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockManagerRow(tx, request.ManagerID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&TransferModel{}).
			Where("manager_id = ?", request.ManagerID.Value()).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count transfers: %w", err)
		}

		if int(count) >= limit {
			return nil
		}

		model = r.newModel(request, int(count))
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create transfer: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if model == nil {
		return false, nil
	}

	request.ID = model.ID
	request.Priority = model.Priority
	request.CreatedAt = model.CreatedAt
	return true, nil
}

// DeleteAndShift deletes the request at priority and moves every later request of the
// manager one slot up, in a single transaction.
func (r *GormTransferRepository) DeleteAndShift(ctx context.Context, managerID shared.ManagerID, priority int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockManagerRow(tx, managerID); err != nil {
			return err
		}

		result := tx.Where("manager_id = ? AND priority = ?", managerID.Value(), priority).
			Delete(&TransferModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete transfer: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError(shared.ResourceTransfer, filterKey(transfer.AtPriority(managerID, priority)))
		}

		if err := tx.Model(&TransferModel{}).
			Where("manager_id = ? AND priority > ?", managerID.Value(), priority).
			UpdateColumn("priority", gorm.Expr("priority - ?", 1)).Error; err != nil {
			return fmt.Errorf("failed to shift transfer priorities: %w", err)
		}

		return nil
	})
}

// lockManagerRow serializes writers of one manager's queue across processes.
// SQLite has no row locks; its transactions already hold the database write lock.
func lockManagerRow(tx *gorm.DB, managerID shared.ManagerID) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}

	var locked []ManagerModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", managerID.Value()).
		Find(&locked).Error; err != nil {
		return fmt.Errorf("failed to lock manager %s: %w", managerID, err)
	}
	return nil
}

func applyFilter(db *gorm.DB, filter transfer.Filter) *gorm.DB {
	db = db.Where("manager_id = ?", filter.ManagerID.Value())
	if filter.Priority != nil {
		db = db.Where("priority = ?", *filter.Priority)
	}
	return db
}

func filterKey(filter transfer.Filter) string {
	if filter.Priority == nil {
		return filter.ManagerID.String()
	}
	return fmt.Sprintf("%s/%d", filter.ManagerID, *filter.Priority)
}

func (r *GormTransferRepository) newModel(request *transfer.TransferRequest, priority int) *TransferModel {
	return &TransferModel{
		ID:               uuid.New().String(),
		ManagerID:        request.ManagerID.Value(),
		InboundPlayerID:  request.InboundPlayerID.Value(),
		OutboundPlayerID: request.OutboundPlayerID.Value(),
		Priority:         priority,
		CreatedAt:        r.clock.Now(),
	}
}

// modelToTransfer converts database model to domain entity
func (r *GormTransferRepository) modelToTransfer(model *TransferModel) (*transfer.TransferRequest, error) {
	managerID, err := shared.NewManagerID(model.ManagerID)
	if err != nil {
		return nil, fmt.Errorf("invalid manager ID in database: %w", err)
	}
	inbound, err := shared.NewPlayerID(model.InboundPlayerID)
	if err != nil {
		return nil, fmt.Errorf("invalid inbound player ID in database: %w", err)
	}
	outbound, err := shared.NewPlayerID(model.OutboundPlayerID)
	if err != nil {
		return nil, fmt.Errorf("invalid outbound player ID in database: %w", err)
	}

	return &transfer.TransferRequest{
		ID:               model.ID,
		ManagerID:        managerID,
		InboundPlayerID:  inbound,
		OutboundPlayerID: outbound,
		Priority:         model.Priority,
		CreatedAt:        model.CreatedAt,
	}, nil
}
