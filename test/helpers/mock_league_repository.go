package helpers

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// MockLeagueRepository is an in-memory LeagueRepository
type MockLeagueRepository struct {
	mu       sync.RWMutex
	leagues  map[int]*league.League
	memberOf map[int]int // managerID -> leagueID
	nextID   int

	AddMemberErr error
}

// NewMockLeagueRepository creates an empty mock league repository
func NewMockLeagueRepository() *MockLeagueRepository {
	return &MockLeagueRepository{
		leagues:  make(map[int]*league.League),
		memberOf: make(map[int]int),
		nextID:   1,
	}
}

func (m *MockLeagueRepository) Add(ctx context.Context, l *league.League) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l.ID = m.nextID
	l.CreatedAt = time.Now().UTC()
	m.nextID++
	m.leagues[l.ID] = copyLeague(l)
	return nil
}

func (m *MockLeagueRepository) FindByID(ctx context.Context, leagueID int) (*league.League, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.leagues[leagueID]
	if !ok {
		return nil, shared.NewNotFoundError(shared.ResourceLeague, strconv.Itoa(leagueID))
	}
	return copyLeague(l), nil
}

func (m *MockLeagueRepository) FindBySecret(ctx context.Context, secret string) (*league.League, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, l := range m.leagues {
		if l.Secret == secret {
			return copyLeague(l), nil
		}
	}
	return nil, shared.NewNotFoundError(shared.ResourceLeague, secret)
}

func (m *MockLeagueRepository) FindByMember(ctx context.Context, managerID shared.ManagerID) (*league.League, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	leagueID, ok := m.memberOf[managerID.Value()]
	if !ok {
		return nil, shared.NewNotFoundError(shared.ResourceLeague, "member "+managerID.String())
	}
	return copyLeague(m.leagues[leagueID]), nil
}

func (m *MockLeagueRepository) AddMember(ctx context.Context, leagueID int, managerID shared.ManagerID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AddMemberErr != nil {
		return m.AddMemberErr
	}
	if current, ok := m.memberOf[managerID.Value()]; ok {
		return league.NewAlreadyInLeagueError(managerID, m.leagues[current].Name)
	}
	l, ok := m.leagues[leagueID]
	if !ok {
		return shared.NewNotFoundError(shared.ResourceLeague, strconv.Itoa(leagueID))
	}

	l.Members = append(l.Members, managerID)
	m.memberOf[managerID.Value()] = leagueID
	return nil
}

func (m *MockLeagueRepository) RemoveMember(ctx context.Context, leagueID int, managerID shared.ManagerID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.memberOf[managerID.Value()]; !ok || current != leagueID {
		return shared.NewNotFoundError(shared.ResourceLeague, fmt.Sprintf("%d/member %s", leagueID, managerID))
	}

	l := m.leagues[leagueID]
	members := l.Members[:0]
	for _, member := range l.Members {
		if !member.Equals(managerID) {
			members = append(members, member)
		}
	}
	l.Members = members
	delete(m.memberOf, managerID.Value())
	return nil
}

func copyLeague(l *league.League) *league.League {
	c := *l
	c.Members = append([]shared.ManagerID(nil), l.Members...)
	return &c
}

var _ league.LeagueRepository = (*MockLeagueRepository)(nil)
