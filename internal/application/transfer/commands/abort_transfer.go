package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	appTransfer "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

// AbortTransferCommand removes the request shown at Position (1-based, as listed)
// from the manager's queue
type AbortTransferCommand struct {
	ManagerID shared.ManagerID
	Position  int
}

// ScopeManagerID implements common.ManagerScoped
func (c *AbortTransferCommand) ScopeManagerID() shared.ManagerID {
	return c.ManagerID
}

// AbortTransferResponse reports the aborted slot and how many requests remain
type AbortTransferResponse struct {
	Position  int
	Remaining int
}

// AbortTransferHandler handles the AbortTransfer command
type AbortTransferHandler struct {
	queue *appTransfer.Queue
}

// NewAbortTransferHandler creates a new AbortTransferHandler
func NewAbortTransferHandler(queue *appTransfer.Queue) *AbortTransferHandler {
	return &AbortTransferHandler{queue: queue}
}

// Handle executes the AbortTransfer command
func (h *AbortTransferHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*AbortTransferCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AbortTransferCommand")
	}

	remaining, err := h.queue.Abort(ctx, cmd.ManagerID, transfer.PriorityFromPosition(cmd.Position))
	if err != nil {
		return nil, err
	}

	return &AbortTransferResponse{
		Position:  cmd.Position,
		Remaining: remaining,
	}, nil
}
