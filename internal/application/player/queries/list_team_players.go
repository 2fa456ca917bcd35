package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// ListTeamPlayersQuery lists the roster of one team
type ListTeamPlayersQuery struct {
	TeamID int
}

// ListTeamPlayersResponse holds the roster ordered by name
type ListTeamPlayersResponse struct {
	Players []*player.Player
}

// ListTeamPlayersHandler handles the ListTeamPlayers query
type ListTeamPlayersHandler struct {
	playerRepo player.PlayerRepository
}

// NewListTeamPlayersHandler creates a new ListTeamPlayersHandler
func NewListTeamPlayersHandler(playerRepo player.PlayerRepository) *ListTeamPlayersHandler {
	return &ListTeamPlayersHandler{
		playerRepo: playerRepo,
	}
}

// Handle executes the ListTeamPlayers query
func (h *ListTeamPlayersHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListTeamPlayersQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListTeamPlayersQuery")
	}

	if query.TeamID <= 0 {
		return nil, shared.NewValidationError("team_id", "must be positive")
	}

	players, err := h.playerRepo.ListByTeam(ctx, query.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team players: %w", err)
	}

	return &ListTeamPlayersResponse{
		Players: players,
	}, nil
}
