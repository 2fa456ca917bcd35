package league

import (
	"context"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// LeagueRepository defines league and membership persistence operations.
// Lookups return a *shared.NotFoundError when nothing matches.
type LeagueRepository interface {
	Add(ctx context.Context, league *League) error
	FindByID(ctx context.Context, leagueID int) (*League, error)
	FindBySecret(ctx context.Context, secret string) (*League, error)

	// FindByMember returns the league managerID has joined
	FindByMember(ctx context.Context, managerID shared.ManagerID) (*League, error)

	// AddMember joins managerID to the league in one unit of work. Fails with an
	// *AlreadyInLeagueError, changing nothing, when the manager is in any league.
	AddMember(ctx context.Context, leagueID int, managerID shared.ManagerID) error

	// RemoveMember drops the membership; a missing membership is a *shared.NotFoundError
	RemoveMember(ctx context.Context, leagueID int, managerID shared.ManagerID) error
}
