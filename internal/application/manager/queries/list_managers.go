package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
)

// ListManagersQuery represents a query to list all registered managers
type ListManagersQuery struct{}

// ListManagersResponse represents the result of listing managers
type ListManagersResponse struct {
	Managers []*manager.Manager
}

// ListManagersHandler handles the ListManagers query
type ListManagersHandler struct {
	managerRepo manager.ManagerRepository
}

// NewListManagersHandler creates a new ListManagersHandler
func NewListManagersHandler(managerRepo manager.ManagerRepository) *ListManagersHandler {
	return &ListManagersHandler{
		managerRepo: managerRepo,
	}
}

// Handle executes the ListManagers query
func (h *ListManagersHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ListManagersQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListManagersQuery")
	}

	managers, err := h.managerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}

	return &ListManagersResponse{
		Managers: managers,
	}, nil
}
