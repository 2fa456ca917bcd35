package transfer

import (
	"errors"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// Sentinels for errors.Is checks by callers that only need the category
var (
	ErrCapacityExceeded   = errors.New("transfers count is exceeded")
	ErrInvalidPriority    = errors.New("invalid transfer priority")
	ErrStoreUnavailable   = errors.New("transfer store unavailable")
	ErrReprioritizeFailed = errors.New("transfer reprioritization failed")
)

// CapacityExceededError is returned when a manager already holds Limit pending requests
type CapacityExceededError struct {
	*shared.DomainError
	ManagerID shared.ManagerID
	Limit     int
}

func NewCapacityExceededError(managerID shared.ManagerID, limit int) *CapacityExceededError {
	return &CapacityExceededError{
		DomainError: shared.NewDomainError(fmt.Sprintf("manager %s already has %d pending transfers", managerID, limit)),
		ManagerID:   managerID,
		Limit:       limit,
	}
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// InvalidPriorityError is returned for a slot outside [0, Count)
type InvalidPriorityError struct {
	*shared.DomainError
	Priority int
	Count    int
}

func NewInvalidPriorityError(priority, count int) *InvalidPriorityError {
	return &InvalidPriorityError{
		DomainError: shared.NewDomainError(fmt.Sprintf("transfer priority %d is out of range [0, %d)", priority, count)),
		Priority:    priority,
		Count:       count,
	}
}

func (e *InvalidPriorityError) Is(target error) bool {
	return target == ErrInvalidPriority
}

// StoreUnavailableError wraps an infrastructure failure. Nothing was applied.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func NewStoreUnavailableError(op string, err error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Err: err}
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("transfer store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// ReprioritizeFailedError is returned when the delete-and-shift unit of work did not commit
type ReprioritizeFailedError struct {
	ManagerID shared.ManagerID
	Priority  int
	Err       error
}

func NewReprioritizeFailedError(managerID shared.ManagerID, priority int, err error) *ReprioritizeFailedError {
	return &ReprioritizeFailedError{ManagerID: managerID, Priority: priority, Err: err}
}

func (e *ReprioritizeFailedError) Error() string {
	return fmt.Sprintf("failed to abort transfer %d of manager %s: %v", e.Priority, e.ManagerID, e.Err)
}

func (e *ReprioritizeFailedError) Unwrap() error {
	return e.Err
}

func (e *ReprioritizeFailedError) Is(target error) bool {
	return target == ErrReprioritizeFailed
}
