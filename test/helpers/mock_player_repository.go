package helpers

import (
	"context"
	"sort"
	"sync"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// MockPlayerRepository is a test double for PlayerRepository interface
type MockPlayerRepository struct {
	mu      sync.RWMutex
	players map[int]*player.Player // playerID -> player
	nextID  int
}

// NewMockPlayerRepository creates a new mock player repository
func NewMockPlayerRepository() *MockPlayerRepository {
	return &MockPlayerRepository{
		players: make(map[int]*player.Player),
		nextID:  1,
	}
}

// AddPlayer builds and stores a player, failing the caller's setup on invalid input
func (m *MockPlayerRepository) AddPlayer(name, position, club string) *player.Player {
	p, err := player.NewPlayer(name, position, club)
	if err != nil {
		panic(err)
	}
	_ = m.Add(context.Background(), p)
	return p
}

func (m *MockPlayerRepository) FindByID(ctx context.Context, playerID shared.PlayerID) (*player.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.players[playerID.Value()]
	if !ok {
		return nil, shared.NewNotFoundError(shared.ResourcePlayer, playerID.String())
	}
	return p, nil
}

func (m *MockPlayerRepository) FindBySpec(ctx context.Context, spec player.Spec) (*player.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	spec = spec.Normalize()
	for _, p := range m.players {
		if p.Name == spec.Name && p.Position == spec.Position && p.Club == spec.Club {
			return p, nil
		}
	}
	return nil, shared.NewNotFoundError(shared.ResourcePlayer, spec.Name+", "+spec.Position+", "+spec.Club)
}

func (m *MockPlayerRepository) FindByIDs(ctx context.Context, playerIDs []shared.PlayerID) (map[shared.PlayerID]*player.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	found := make(map[shared.PlayerID]*player.Player, len(playerIDs))
	for _, id := range playerIDs {
		if p, ok := m.players[id.Value()]; ok {
			found[id] = p
		}
	}
	return found, nil
}

func (m *MockPlayerRepository) ListByTeam(ctx context.Context, teamID int) ([]*player.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var roster []*player.Player
	for _, p := range m.players {
		if p.TeamID != nil && *p.TeamID == teamID {
			roster = append(roster, p)
		}
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].Name < roster[j].Name })
	return roster, nil
}

func (m *MockPlayerRepository) Add(ctx context.Context, p *player.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = shared.MustNewPlayerID(m.nextID)
	m.nextID++
	m.players[p.ID.Value()] = p
	return nil
}

var _ player.PlayerRepository = (*MockPlayerRepository)(nil)
