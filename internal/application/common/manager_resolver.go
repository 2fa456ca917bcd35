package common

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// ManagerScoped is implemented by commands and queries that act on one manager's data
type ManagerScoped interface {
	ScopeManagerID() shared.ManagerID
}

// ManagerResolver resolves a manager from either a numeric ID or a chat user id.
//
// Business rules:
//   - At least one of managerID or externalID must be provided
//   - If both are provided, managerID takes precedence
type ManagerResolver struct {
	managerRepo manager.ManagerRepository
}

// NewManagerResolver creates a new manager resolver
func NewManagerResolver(managerRepo manager.ManagerRepository) *ManagerResolver {
	return &ManagerResolver{
		managerRepo: managerRepo,
	}
}

// ResolveManager loads the manager identified by managerID or externalID
func (r *ManagerResolver) ResolveManager(ctx context.Context, managerID *int, externalID string) (*manager.Manager, error) {
	if managerID == nil && externalID == "" {
		return nil, fmt.Errorf("either manager_id or external_id must be provided")
	}

	if managerID != nil {
		id, err := shared.NewManagerID(*managerID)
		if err != nil {
			return nil, fmt.Errorf("invalid manager ID: %w", err)
		}
		m, err := r.managerRepo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to find manager by ID: %w", err)
		}
		return m, nil
	}

	m, err := r.managerRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find manager by external ID: %w", err)
	}
	return m, nil
}

type managerKey struct{}

// WithManager stores the resolved manager in the context
func WithManager(ctx context.Context, m *manager.Manager) context.Context {
	return context.WithValue(ctx, managerKey{}, m)
}

// ManagerFromContext returns the manager stored by ManagerMiddleware
func ManagerFromContext(ctx context.Context) (*manager.Manager, bool) {
	m, ok := ctx.Value(managerKey{}).(*manager.Manager)
	return m, ok && m != nil
}

// ManagerMiddleware rejects manager-scoped requests for unknown managers and
// injects the resolved manager into the context for the handler.
func ManagerMiddleware(managerRepo manager.ManagerRepository) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		scoped, ok := request.(ManagerScoped)
		if !ok {
			return next(ctx, request)
		}

		managerID := scoped.ScopeManagerID()
		if managerID.IsZero() {
			return nil, shared.NewValidationError("manager_id", "is required")
		}

		m, err := managerRepo.FindByID(ctx, managerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve manager %s: %w", managerID, err)
		}

		return next(WithManager(ctx, m), request)
	}
}
