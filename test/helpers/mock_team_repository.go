package helpers

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
)

// MockTeamRepository is an in-memory TeamRepository
type MockTeamRepository struct {
	mu     sync.RWMutex
	teams  map[int]*team.Team
	nextID int
}

// NewMockTeamRepository creates an empty mock team repository
func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{
		teams:  make(map[int]*team.Team),
		nextID: 1,
	}
}

func (m *MockTeamRepository) Add(ctx context.Context, t *team.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.teams {
		if existing.ManagerID.Equals(t.ManagerID) {
			return team.NewAlreadyHasTeamError(t.ManagerID, existing.Name)
		}
	}

	t.ID = m.nextID
	t.CreatedAt = time.Now().UTC()
	m.nextID++
	c := *t
	m.teams[t.ID] = &c
	return nil
}

func (m *MockTeamRepository) FindByID(ctx context.Context, teamID int) (*team.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[teamID]
	if !ok {
		return nil, shared.NewNotFoundError(shared.ResourceTeam, strconv.Itoa(teamID))
	}
	c := *t
	return &c, nil
}

func (m *MockTeamRepository) FindByManager(ctx context.Context, managerID shared.ManagerID) (*team.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.teams {
		if t.ManagerID.Equals(managerID) {
			c := *t
			return &c, nil
		}
	}
	return nil, shared.NewNotFoundError(shared.ResourceTeam, "manager "+managerID.String())
}

var _ team.TeamRepository = (*MockTeamRepository)(nil)
