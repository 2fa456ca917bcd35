package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
)

// GetTeamQuery returns a manager's team and its roster
type GetTeamQuery struct {
	ManagerID shared.ManagerID
}

// ScopeManagerID implements common.ManagerScoped
func (q *GetTeamQuery) ScopeManagerID() shared.ManagerID {
	return q.ManagerID
}

// GetTeamResponse carries the team and its players ordered by name
type GetTeamResponse struct {
	Team   *team.Team
	Roster []*player.Player
}

// GetTeamHandler handles the GetTeam query
type GetTeamHandler struct {
	teamRepo   team.TeamRepository
	playerRepo player.PlayerRepository
}

// NewGetTeamHandler creates a new GetTeamHandler
func NewGetTeamHandler(teamRepo team.TeamRepository, playerRepo player.PlayerRepository) *GetTeamHandler {
	return &GetTeamHandler{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// Handle executes the GetTeam query. A manager without a team gets a *shared.NotFoundError.
func (h *GetTeamHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetTeamQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetTeamQuery")
	}

	t, err := h.teamRepo.FindByManager(ctx, query.ManagerID)
	if err != nil {
		return nil, err
	}

	roster, err := h.playerRepo.ListByTeam(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team players: %w", err)
	}

	return &GetTeamResponse{
		Team:   t,
		Roster: roster,
	}, nil
}
