package team

import (
	"context"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// TeamRepository defines team persistence operations
type TeamRepository interface {
	// Add stores the team and assigns its ID. Fails with an *AlreadyHasTeamError
	// when the manager already owns one.
	Add(ctx context.Context, team *Team) error
	FindByID(ctx context.Context, teamID int) (*Team, error)
	FindByManager(ctx context.Context, managerID shared.ManagerID) (*Team, error)
}
