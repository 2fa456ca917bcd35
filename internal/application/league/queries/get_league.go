package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// GetLeagueQuery returns the league a manager has joined
type GetLeagueQuery struct {
	ManagerID shared.ManagerID
}

// ScopeManagerID implements common.ManagerScoped
func (q *GetLeagueQuery) ScopeManagerID() shared.ManagerID {
	return q.ManagerID
}

// GetLeagueResponse carries the league with its members
type GetLeagueResponse struct {
	League *league.League
}

// GetLeagueHandler handles the GetLeague query
type GetLeagueHandler struct {
	leagueRepo league.LeagueRepository
}

// NewGetLeagueHandler creates a new GetLeagueHandler
func NewGetLeagueHandler(leagueRepo league.LeagueRepository) *GetLeagueHandler {
	return &GetLeagueHandler{leagueRepo: leagueRepo}
}

// Handle executes the GetLeague query; a manager without a league gets a NotInLeagueError
func (h *GetLeagueHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetLeagueQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetLeagueQuery")
	}

	l, err := h.leagueRepo.FindByMember(ctx, query.ManagerID)
	if err != nil {
		var notFound *shared.NotFoundError
		if errors.As(err, &notFound) {
			return nil, league.NewNotInLeagueError(query.ManagerID)
		}
		return nil, fmt.Errorf("failed to find league: %w", err)
	}

	return &GetLeagueResponse{League: l}, nil
}
