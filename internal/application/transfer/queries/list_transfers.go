package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	appPlayer "github.com/andrescamacho/fantasy-manager-go/internal/application/player"
	appTransfer "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

// ListTransfersQuery lists a manager's pending transfer requests
type ListTransfersQuery struct {
	ManagerID shared.ManagerID
}

// ScopeManagerID implements common.ManagerScoped
func (q *ListTransfersQuery) ScopeManagerID() shared.ManagerID {
	return q.ManagerID
}

// TransferView is a queued request together with the players it names.
// A player missing from the directory is left nil.
type TransferView struct {
	Transfer *transfer.TransferRequest
	Inbound  *player.Player
	Outbound *player.Player
}

// ListTransfersResponse holds the views in ascending priority
type ListTransfersResponse struct {
	Transfers []TransferView
}

// ListTransfersHandler handles the ListTransfers query
type ListTransfersHandler struct {
	queue     *appTransfer.Queue
	directory *appPlayer.Directory
}

// NewListTransfersHandler creates a new ListTransfersHandler
func NewListTransfersHandler(queue *appTransfer.Queue, directory *appPlayer.Directory) *ListTransfersHandler {
	return &ListTransfersHandler{
		queue:     queue,
		directory: directory,
	}
}

// Handle executes the ListTransfers query
func (h *ListTransfersHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListTransfersQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListTransfersQuery")
	}

	requests, err := h.queue.ListByManager(ctx, query.ManagerID)
	if err != nil {
		return nil, err
	}

	ids := make([]shared.PlayerID, 0, len(requests)*2)
	for _, req := range requests {
		ids = append(ids, req.InboundPlayerID, req.OutboundPlayerID)
	}

	players, err := h.directory.PlayersByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]TransferView, 0, len(requests))
	for _, req := range requests {
		views = append(views, TransferView{
			Transfer: req,
			Inbound:  players[req.InboundPlayerID],
			Outbound: players[req.OutboundPlayerID],
		})
	}

	return &ListTransfersResponse{
		Transfers: views,
	}, nil
}
