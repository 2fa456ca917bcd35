package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// LeaveLeagueCommand removes the manager from the league they joined
type LeaveLeagueCommand struct {
	ManagerID shared.ManagerID
}

// ScopeManagerID implements common.ManagerScoped
func (c *LeaveLeagueCommand) ScopeManagerID() shared.ManagerID {
	return c.ManagerID
}

// LeaveLeagueResponse names the league that was left
type LeaveLeagueResponse struct {
	League *league.League
}

// LeaveLeagueHandler handles the LeaveLeague command
type LeaveLeagueHandler struct {
	leagueRepo league.LeagueRepository
}

// NewLeaveLeagueHandler creates a new LeaveLeagueHandler
func NewLeaveLeagueHandler(leagueRepo league.LeagueRepository) *LeaveLeagueHandler {
	return &LeaveLeagueHandler{leagueRepo: leagueRepo}
}

// Handle executes the LeaveLeague command
func (h *LeaveLeagueHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*LeaveLeagueCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *LeaveLeagueCommand")
	}

	current, err := findMembership(ctx, h.leagueRepo, cmd.ManagerID)
	if err != nil {
		return nil, err
	}

	if err := h.leagueRepo.RemoveMember(ctx, current.ID, cmd.ManagerID); err != nil {
		var notFound *shared.NotFoundError
		if errors.As(err, &notFound) {
			// left concurrently
			return nil, league.NewNotInLeagueError(cmd.ManagerID)
		}
		return nil, fmt.Errorf("failed to leave league: %w", err)
	}

	common.LoggerFromContext(ctx).Log(common.LevelInfo, fmt.Sprintf("[League] Manager %s left league %d", cmd.ManagerID, current.ID), nil)

	return &LeaveLeagueResponse{League: current}, nil
}

// findMembership maps a missing membership to a NotInLeagueError
func findMembership(ctx context.Context, repo league.LeagueRepository, managerID shared.ManagerID) (*league.League, error) {
	current, err := repo.FindByMember(ctx, managerID)
	if err == nil {
		return current, nil
	}
	var notFound *shared.NotFoundError
	if errors.As(err, &notFound) {
		return nil, league.NewNotInLeagueError(managerID)
	}
	return nil, fmt.Errorf("failed to look up league membership: %w", err)
}
