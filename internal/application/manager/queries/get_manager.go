package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
)

// GetManagerQuery represents a query to get a manager by ID or chat user id
type GetManagerQuery struct {
	ManagerID  *int   // Optional: get by manager ID
	ExternalID string // Optional: get by chat user id
}

// GetManagerResponse represents the result of getting a manager
type GetManagerResponse struct {
	Manager *manager.Manager
}

// GetManagerHandler handles the GetManager query
type GetManagerHandler struct {
	resolver *common.ManagerResolver
}

// NewGetManagerHandler creates a new GetManagerHandler
func NewGetManagerHandler(managerRepo manager.ManagerRepository) *GetManagerHandler {
	return &GetManagerHandler{
		resolver: common.NewManagerResolver(managerRepo),
	}
}

// Handle executes the GetManager query
func (h *GetManagerHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetManagerQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetManagerQuery")
	}

	m, err := h.resolver.ResolveManager(ctx, query.ManagerID, query.ExternalID)
	if err != nil {
		return nil, err
	}

	return &GetManagerResponse{
		Manager: m,
	}, nil
}
