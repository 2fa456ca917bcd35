package helpers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

// MockTransferRepository is an in-memory TransferRepository with per-operation error injection
type MockTransferRepository struct {
	mu       sync.Mutex
	requests map[int][]*transfer.TransferRequest // managerID -> requests by priority

	CountErr  error
	ListErr   error
	GetErr    error
	InsertErr error
	AppendErr error
	ShiftErr  error

	appendCalls int
	shiftCalls  int
}

// NewMockTransferRepository creates an empty mock transfer repository
func NewMockTransferRepository() *MockTransferRepository {
	return &MockTransferRepository{
		requests: make(map[int][]*transfer.TransferRequest),
	}
}

// Seed stores a request as-is, bypassing error injection
func (m *MockTransferRepository) Seed(request *transfer.TransferRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store(request)
}

func (m *MockTransferRepository) Get(ctx context.Context, filter transfer.Filter) (*transfer.TransferRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	matched := m.match(filter)
	if len(matched) == 0 {
		return nil, shared.NewNotFoundError(shared.ResourceTransfer, filter.ManagerID.String())
	}
	return copyRequest(matched[0]), nil
}

func (m *MockTransferRepository) List(ctx context.Context, filter transfer.Filter) ([]*transfer.TransferRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	matched := m.match(filter)
	result := make([]*transfer.TransferRequest, 0, len(matched))
	for _, req := range matched {
		result = append(result, copyRequest(req))
	}
	return result, nil
}

func (m *MockTransferRepository) Count(ctx context.Context, filter transfer.Filter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return len(m.match(filter)), nil
}

func (m *MockTransferRepository) Insert(ctx context.Context, request *transfer.TransferRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertErr != nil {
		return m.InsertErr
	}

	request.ID = uuid.New().String()
	m.store(copyRequest(request))
	return nil
}

func (m *MockTransferRepository) Append(ctx context.Context, request *transfer.TransferRequest, limit int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.appendCalls++
	if m.AppendErr != nil {
		return false, m.AppendErr
	}

	count := len(m.requests[request.ManagerID.Value()])
	if count >= limit {
		return false, nil
	}

	request.ID = uuid.New().String()
	request.Priority = count
	m.store(copyRequest(request))
	return true, nil
}

func (m *MockTransferRepository) DeleteAndShift(ctx context.Context, managerID shared.ManagerID, priority int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.shiftCalls++
	if m.ShiftErr != nil {
		return m.ShiftErr
	}

	queue := m.requests[managerID.Value()]
	index := -1
	for i, req := range queue {
		if req.Priority == priority {
			index = i
			break
		}
	}
	if index < 0 {
		return shared.NewNotFoundError(shared.ResourceTransfer, fmt.Sprintf("%s/%d", managerID, priority))
	}

	queue = append(queue[:index], queue[index+1:]...)
	for _, req := range queue {
		if req.Priority > priority {
			req.Priority--
		}
	}
	m.requests[managerID.Value()] = queue
	return nil
}

// AppendCalls returns how many times Append was invoked
func (m *MockTransferRepository) AppendCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appendCalls
}

// ShiftCalls returns how many times DeleteAndShift was invoked
func (m *MockTransferRepository) ShiftCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shiftCalls
}

func (m *MockTransferRepository) store(request *transfer.TransferRequest) {
	queue := append(m.requests[request.ManagerID.Value()], request)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Priority < queue[j].Priority
	})
	m.requests[request.ManagerID.Value()] = queue
}

func (m *MockTransferRepository) match(filter transfer.Filter) []*transfer.TransferRequest {
	var matched []*transfer.TransferRequest
	for _, req := range m.requests[filter.ManagerID.Value()] {
		if filter.Priority != nil && req.Priority != *filter.Priority {
			continue
		}
		matched = append(matched, req)
	}
	return matched
}

func copyRequest(request *transfer.TransferRequest) *transfer.TransferRequest {
	c := *request
	return &c
}

var _ transfer.TransferRepository = (*MockTransferRepository)(nil)
