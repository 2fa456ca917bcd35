package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/metrics"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	appPlayer "github.com/andrescamacho/fantasy-manager-go/internal/application/player"
	appTransfer "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

// CreateTransferCommand files a transfer application: bring Inbound into the
// manager's roster in exchange for Outbound
type CreateTransferCommand struct {
	ManagerID shared.ManagerID
	Inbound   player.Spec
	Outbound  player.Spec
}

// ScopeManagerID implements common.ManagerScoped
func (c *CreateTransferCommand) ScopeManagerID() shared.ManagerID {
	return c.ManagerID
}

// CreateTransferResponse carries the queued request and both resolved players
type CreateTransferResponse struct {
	Transfer *transfer.TransferRequest
	Inbound  *player.Player
	Outbound *player.Player
}

// CreateTransferHandler handles the CreateTransfer command
type CreateTransferHandler struct {
	queue     *appTransfer.Queue
	directory *appPlayer.Directory
}

// NewCreateTransferHandler creates a new CreateTransferHandler
func NewCreateTransferHandler(queue *appTransfer.Queue, directory *appPlayer.Directory) *CreateTransferHandler {
	return &CreateTransferHandler{
		queue:     queue,
		directory: directory,
	}
}

// Handle executes the CreateTransfer command.
// A full queue is reported before the players are looked up; the queue
// re-checks capacity atomically when appending.
func (h *CreateTransferHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CreateTransferCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateTransferCommand")
	}

	logger := common.LoggerFromContext(ctx)

	count, err := h.queue.Count(ctx, cmd.ManagerID)
	if err != nil {
		return nil, err
	}
	if count >= h.queue.Limit() {
		logger.Log(common.LevelWarn, fmt.Sprintf("[CreateTransfer] Manager %s already has %d transfers", cmd.ManagerID, count), nil)
		metrics.RecordTransferRejected(metrics.RejectReasonCapacity)
		return nil, transfer.NewCapacityExceededError(cmd.ManagerID, h.queue.Limit())
	}

	inbound, outbound, err := h.directory.ResolvePair(ctx, cmd.Inbound, cmd.Outbound)
	if err != nil {
		return nil, err
	}

	req, err := h.queue.Create(ctx, cmd.ManagerID, inbound.ID, outbound.ID)
	if err != nil {
		return nil, err
	}

	return &CreateTransferResponse{
		Transfer: req,
		Inbound:  inbound,
		Outbound: outbound,
	}, nil
}
