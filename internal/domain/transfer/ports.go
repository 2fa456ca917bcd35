package transfer

import (
	"context"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// Filter selects transfer requests of one manager, optionally at one priority
type Filter struct {
	ManagerID shared.ManagerID
	Priority  *int
}

// ForManager builds a filter over every request of a manager
func ForManager(managerID shared.ManagerID) Filter {
	return Filter{ManagerID: managerID}
}

// AtPriority builds a filter over the single request at a slot
func AtPriority(managerID shared.ManagerID, priority int) Filter {
	return Filter{ManagerID: managerID, Priority: &priority}
}

// TransferRepository is the record store behind the transfer queue.
//
// Append and DeleteAndShift are single units of work: no reader may observe a
// state where the queue has a gap or a duplicated priority.
type TransferRepository interface {
	// Get returns the request matching the filter, or a *shared.NotFoundError
	Get(ctx context.Context, filter Filter) (*TransferRequest, error)

	// List returns matching requests ordered by ascending priority
	List(ctx context.Context, filter Filter) ([]*TransferRequest, error)

	Count(ctx context.Context, filter Filter) (int, error)

	// Insert stores the request with the priority it already carries
	Insert(ctx context.Context, request *TransferRequest) error

	// Append counts the manager's requests and, if the count is below limit, stores
	// the request at priority = count. Returns false without writing when full.
	Append(ctx context.Context, request *TransferRequest, limit int) (bool, error)

	// DeleteAndShift removes the request at priority and decrements the priority of
	// every later request of the same manager. Returns a *shared.NotFoundError and
	// changes nothing when the slot is empty.
	DeleteAndShift(ctx context.Context, managerID shared.ManagerID, priority int) error
}
