package helpers

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/persistence"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// TestRepositories holds all real repository instances for integration tests
type TestRepositories struct {
	DB           *gorm.DB
	ManagerRepo  *persistence.GormManagerRepository
	PlayerRepo   *persistence.GormPlayerRepository
	TransferRepo *persistence.GormTransferRepository
	LeagueRepo   *persistence.GormLeagueRepository
	TeamRepo     *persistence.GormTeamRepository
}

// NewTestRepositories creates all real repository instances on db.
// clock stamps created records (usually a MockClock in tests).
func NewTestRepositories(db *gorm.DB, clock shared.Clock) *TestRepositories {
	return &TestRepositories{
		DB:           db,
		ManagerRepo:  persistence.NewGormManagerRepository(db, clock),
		PlayerRepo:   persistence.NewGormPlayerRepository(db),
		TransferRepo: persistence.NewGormTransferRepository(db, clock),
		LeagueRepo:   persistence.NewGormLeagueRepository(db, clock),
		TeamRepo:     persistence.NewGormTeamRepository(db, clock),
	}
}

// SeedManager registers a manager with the given chat user id
func (r *TestRepositories) SeedManager(ctx context.Context, externalID, name string) (*manager.Manager, error) {
	m, err := manager.NewManager(externalID, name)
	if err != nil {
		return nil, err
	}
	if err := r.ManagerRepo.Add(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to seed manager %s: %w", externalID, err)
	}
	return m, nil
}

// SeedPlayers adds one player per "Name, Position, Club" label, in order
func (r *TestRepositories) SeedPlayers(ctx context.Context, labels ...string) ([]*player.Player, error) {
	players := make([]*player.Player, 0, len(labels))
	for _, label := range labels {
		spec, err := player.ParseSpec(label)
		if err != nil {
			return nil, err
		}
		p, err := player.NewPlayer(spec.Name, spec.Position, spec.Club)
		if err != nil {
			return nil, err
		}
		if err := r.PlayerRepo.Add(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to seed player %s: %w", label, err)
		}
		players = append(players, p)
	}
	return players, nil
}
