package helpers

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// MockManagerRepository is a test double for ManagerRepository interface
type MockManagerRepository struct {
	mu         sync.RWMutex
	managers   map[int]*manager.Manager
	byExternal map[string]*manager.Manager
	nextID     int
}

// NewMockManagerRepository creates a new mock manager repository
func NewMockManagerRepository() *MockManagerRepository {
	return &MockManagerRepository{
		managers:   make(map[int]*manager.Manager),
		byExternal: make(map[string]*manager.Manager),
		nextID:     1,
	}
}

// AddManager registers a manager and returns it with its assigned ID
func (m *MockManagerRepository) AddManager(externalID, name string) *manager.Manager {
	mgr, err := manager.NewManager(externalID, name)
	if err != nil {
		panic(err)
	}
	_ = m.Add(context.Background(), mgr)
	return mgr
}

func (m *MockManagerRepository) FindByID(ctx context.Context, managerID shared.ManagerID) (*manager.Manager, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mgr, ok := m.managers[managerID.Value()]
	if !ok {
		return nil, shared.NewNotFoundError(shared.ResourceManager, managerID.String())
	}
	return mgr, nil
}

func (m *MockManagerRepository) FindByExternalID(ctx context.Context, externalID string) (*manager.Manager, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mgr, ok := m.byExternal[externalID]
	if !ok {
		return nil, shared.NewNotFoundError(shared.ResourceManager, externalID)
	}
	return mgr, nil
}

func (m *MockManagerRepository) ListAll(ctx context.Context) ([]*manager.Manager, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*manager.Manager, 0, len(m.managers))
	for _, mgr := range m.managers {
		all = append(all, mgr)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.Value() < all[j].ID.Value() })
	return all, nil
}

func (m *MockManagerRepository) Add(ctx context.Context, mgr *manager.Manager) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byExternal[mgr.ExternalID]; exists {
		return fmt.Errorf("manager with external id %s already exists", mgr.ExternalID)
	}

	mgr.ID = shared.MustNewManagerID(m.nextID)
	mgr.CreatedAt = time.Now().UTC()
	m.nextID++
	m.managers[mgr.ID.Value()] = mgr
	m.byExternal[mgr.ExternalID] = mgr
	return nil
}

var _ manager.ManagerRepository = (*MockManagerRepository)(nil)
