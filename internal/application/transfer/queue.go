package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/metrics"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

// DefaultTransfersCount is the per-manager capacity used when none is configured
const DefaultTransfersCount = 3

// Queue keeps each manager's pending transfer requests ordered, bounded and contiguous.
//
// Mutations of one manager's queue are serialized by a per-manager lock held around the
// whole read-check-write sequence; the repository additionally performs Append and
// DeleteAndShift as single transactions so other processes never see a gap.
// Operations on different managers never block each other. Errors are never retried here.
type Queue struct {
	repo  transfer.TransferRepository
	limit int
	locks *lockRegistry
}

// NewQueue creates a queue bounded to limit pending requests per manager
func NewQueue(repo transfer.TransferRepository, limit int) *Queue {
	if limit <= 0 {
		limit = DefaultTransfersCount
	}
	return &Queue{
		repo:  repo,
		limit: limit,
		locks: newLockRegistry(),
	}
}

// Limit returns the configured per-manager capacity
func (q *Queue) Limit() int {
	return q.limit
}

// Count returns the number of pending requests of a manager
func (q *Queue) Count(ctx context.Context, managerID shared.ManagerID) (int, error) {
	unlock := q.locks.RLock(managerID)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return 0, transfer.NewStoreUnavailableError("count", err)
	}
	return q.count(ctx, managerID)
}

func (q *Queue) count(ctx context.Context, managerID shared.ManagerID) (int, error) {
	count, err := q.repo.Count(ctx, transfer.ForManager(managerID))
	if err != nil {
		return 0, transfer.NewStoreUnavailableError("count", err)
	}
	return count, nil
}

// Create appends a request to the end of the manager's queue.
// Fails with CapacityExceeded, without writing, when the queue is full.
func (q *Queue) Create(ctx context.Context, managerID shared.ManagerID, inbound, outbound shared.PlayerID) (*transfer.TransferRequest, error) {
	logger := common.LoggerFromContext(ctx)

	request, err := transfer.NewTransferRequest(managerID, inbound, outbound)
	if err != nil {
		return nil, err
	}

	unlock := q.locks.Lock(managerID)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return nil, transfer.NewStoreUnavailableError("create", err)
	}

	appended, err := q.repo.Append(ctx, request, q.limit)
	if err != nil {
		logger.Log(common.LevelError, fmt.Sprintf("[TransferQueue] Failed to append transfer for manager %s: %v", managerID, err), nil)
		return nil, transfer.NewStoreUnavailableError("create", err)
	}

	if !appended {
		logger.Log(common.LevelWarn, fmt.Sprintf("[TransferQueue] Manager %s has exceeded transfers count", managerID), map[string]interface{}{
			"manager_id": managerID.Value(),
			"limit":      q.limit,
		})
		metrics.RecordTransferRejected(metrics.RejectReasonCapacity)
		return nil, transfer.NewCapacityExceededError(managerID, q.limit)
	}

	logger.Log(common.LevelInfo, fmt.Sprintf("[TransferQueue] Transfer %s created for manager %s", request.ID, managerID), map[string]interface{}{
		"manager_id": managerID.Value(),
		"priority":   request.Priority,
		"inbound":    inbound.Value(),
		"outbound":   outbound.Value(),
	})
	metrics.RecordTransferCreated(managerID.Value(), request.Priority+1)

	return request, nil
}

// CreateAt stores a request at an explicit priority without a capacity check.
// This is the administrative override for callers that already know the slot is valid.
func (q *Queue) CreateAt(ctx context.Context, managerID shared.ManagerID, inbound, outbound shared.PlayerID, priority int) (*transfer.TransferRequest, error) {
	logger := common.LoggerFromContext(ctx)

	request, err := transfer.NewTransferRequest(managerID, inbound, outbound)
	if err != nil {
		return nil, err
	}

	unlock := q.locks.Lock(managerID)
	defer unlock()

	if priority < 0 {
		count, err := q.count(ctx, managerID)
		if err != nil {
			return nil, err
		}
		metrics.RecordTransferRejected(metrics.RejectReasonPriority)
		return nil, transfer.NewInvalidPriorityError(priority, count)
	}

	request.Priority = priority
	if err := q.repo.Insert(ctx, request); err != nil {
		return nil, transfer.NewStoreUnavailableError("create", err)
	}

	logger.Log(common.LevelWarn, fmt.Sprintf("[TransferQueue] Transfer %s placed at priority %d for manager %s", request.ID, priority, managerID), nil)
	if depth, err := q.count(ctx, managerID); err == nil {
		metrics.RecordTransferCreated(managerID.Value(), depth)
	}

	return request, nil
}

// Abort removes the request at priority and shifts every later request up by one.
// priority must lie in [0, count); priority == count is rejected like any other empty slot.
// Returns the number of requests left once the delete has committed.
func (q *Queue) Abort(ctx context.Context, managerID shared.ManagerID, priority int) (int, error) {
	logger := common.LoggerFromContext(ctx)

	unlock := q.locks.Lock(managerID)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return 0, transfer.NewStoreUnavailableError("abort", err)
	}

	count, err := q.count(ctx, managerID)
	if err != nil {
		return 0, err
	}

	if priority < 0 || priority >= count {
		logger.Log(common.LevelWarn, fmt.Sprintf("[TransferQueue] Rejected abort of priority %d for manager %s with %d transfers", priority, managerID, count), nil)
		metrics.RecordTransferRejected(metrics.RejectReasonPriority)
		return 0, transfer.NewInvalidPriorityError(priority, count)
	}

	if err := q.repo.DeleteAndShift(ctx, managerID, priority); err != nil {
		var notFound *shared.NotFoundError
		if errors.As(err, &notFound) {
			// another process emptied the slot between count and delete
			return 0, transfer.NewInvalidPriorityError(priority, count-1)
		}
		logger.Log(common.LevelError, fmt.Sprintf("[TransferQueue] Failed to abort priority %d for manager %s: %v", priority, managerID, err), nil)
		return 0, transfer.NewReprioritizeFailedError(managerID, priority, err)
	}

	logger.Log(common.LevelInfo, fmt.Sprintf("[TransferQueue] Transfer at priority %d aborted for manager %s", priority, managerID), map[string]interface{}{
		"manager_id": managerID.Value(),
		"remaining":  count - 1,
	})
	metrics.RecordTransferAborted(managerID.Value(), count-1)

	return count - 1, nil
}

// ListByManager returns the manager's pending requests ordered by ascending priority
func (q *Queue) ListByManager(ctx context.Context, managerID shared.ManagerID) ([]*transfer.TransferRequest, error) {
	unlock := q.locks.RLock(managerID)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return nil, transfer.NewStoreUnavailableError("list", err)
	}

	requests, err := q.repo.List(ctx, transfer.ForManager(managerID))
	if err != nil {
		return nil, transfer.NewStoreUnavailableError("list", err)
	}
	return requests, nil
}
