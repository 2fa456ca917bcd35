package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	appTransfer "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// CountTransfersQuery reports how full a manager's queue is
type CountTransfersQuery struct {
	ManagerID shared.ManagerID
}

// ScopeManagerID implements common.ManagerScoped
func (q *CountTransfersQuery) ScopeManagerID() shared.ManagerID {
	return q.ManagerID
}

// CountTransfersResponse holds the pending count and the free slots left
type CountTransfersResponse struct {
	Count     int
	Limit     int
	Remaining int
}

// CountTransfersHandler handles the CountTransfers query
type CountTransfersHandler struct {
	queue *appTransfer.Queue
}

// NewCountTransfersHandler creates a new CountTransfersHandler
func NewCountTransfersHandler(queue *appTransfer.Queue) *CountTransfersHandler {
	return &CountTransfersHandler{queue: queue}
}

// Handle executes the CountTransfers query
func (h *CountTransfersHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*CountTransfersQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CountTransfersQuery")
	}

	count, err := h.queue.Count(ctx, query.ManagerID)
	if err != nil {
		return nil, err
	}

	remaining := h.queue.Limit() - count
	if remaining < 0 {
		// explicit-priority inserts may overfill a queue
		remaining = 0
	}

	return &CountTransfersResponse{
		Count:     count,
		Limit:     h.queue.Limit(),
		Remaining: remaining,
	}, nil
}
