package transfer

import (
	"time"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// TransferRequest is a manager's pending request to swap one roster player for another.
//
// Players and owner never change after creation. Priority is the zero-based rank of the
// request within its manager's queue; it only moves when an earlier request is aborted.
type TransferRequest struct {
	ID               string
	ManagerID        shared.ManagerID
	InboundPlayerID  shared.PlayerID
	OutboundPlayerID shared.PlayerID
	Priority         int
	CreatedAt        time.Time
}

// NewTransferRequest creates an unsaved request. The store assigns ID, CreatedAt and,
// for appended requests, Priority.
func NewTransferRequest(managerID shared.ManagerID, inbound, outbound shared.PlayerID) (*TransferRequest, error) {
	if managerID.IsZero() {
		return nil, shared.NewValidationError("manager_id", "is required")
	}
	if inbound.IsZero() {
		return nil, shared.NewValidationError("inbound_player_id", "is required")
	}
	if outbound.IsZero() {
		return nil, shared.NewValidationError("outbound_player_id", "is required")
	}
	if inbound.Equals(outbound) {
		return nil, shared.NewValidationError("inbound_player_id", "must differ from outbound_player_id")
	}

	return &TransferRequest{
		ManagerID:        managerID,
		InboundPlayerID:  inbound,
		OutboundPlayerID: outbound,
	}, nil
}

// Position returns the 1-based index shown to managers
func (t *TransferRequest) Position() int {
	return t.Priority + 1
}

// PriorityFromPosition converts a 1-based display index into a priority
func PriorityFromPosition(position int) int {
	return position - 1
}
