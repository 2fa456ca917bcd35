package manager

import (
	"context"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// ManagerRepository defines manager persistence operations
type ManagerRepository interface {
	FindByID(ctx context.Context, managerID shared.ManagerID) (*Manager, error)
	FindByExternalID(ctx context.Context, externalID string) (*Manager, error)
	ListAll(ctx context.Context) ([]*Manager, error)
	Add(ctx context.Context, manager *Manager) error
}
