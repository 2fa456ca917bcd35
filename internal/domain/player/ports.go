package player

import (
	"context"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// PlayerRepository defines player directory persistence operations
type PlayerRepository interface {
	FindByID(ctx context.Context, playerID shared.PlayerID) (*Player, error)
	// FindBySpec returns a *shared.NotFoundError when no player matches
	FindBySpec(ctx context.Context, spec Spec) (*Player, error)
	FindByIDs(ctx context.Context, playerIDs []shared.PlayerID) (map[shared.PlayerID]*Player, error)
	ListByTeam(ctx context.Context, teamID int) ([]*Player, error)
	Add(ctx context.Context, player *Player) error
}
