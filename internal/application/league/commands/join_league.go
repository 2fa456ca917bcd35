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

// JoinLeagueCommand joins the manager to the league holding Secret
type JoinLeagueCommand struct {
	ManagerID shared.ManagerID
	Secret    string `validate:"required,max=64"`
}

// ScopeManagerID implements common.ManagerScoped
func (c *JoinLeagueCommand) ScopeManagerID() shared.ManagerID {
	return c.ManagerID
}

// JoinLeagueResponse carries the joined league, members included
type JoinLeagueResponse struct {
	League *league.League
}

// JoinLeagueHandler handles the JoinLeague command
type JoinLeagueHandler struct {
	leagueRepo league.LeagueRepository
}

// NewJoinLeagueHandler creates a new JoinLeagueHandler
func NewJoinLeagueHandler(leagueRepo league.LeagueRepository) *JoinLeagueHandler {
	return &JoinLeagueHandler{leagueRepo: leagueRepo}
}

// Handle executes the JoinLeague command.
// A manager already in a league is refused before the secret is looked up.
func (h *JoinLeagueHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*JoinLeagueCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *JoinLeagueCommand")
	}

	if err := common.ValidateRequest(cmd); err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)

	current, err := h.leagueRepo.FindByMember(ctx, cmd.ManagerID)
	if err == nil {
		logger.Log(common.LevelWarn, fmt.Sprintf("[League] Manager %s is already in league %d", cmd.ManagerID, current.ID), nil)
		return nil, league.NewAlreadyInLeagueError(cmd.ManagerID, current.Name)
	}
	var notFound *shared.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("failed to look up league membership: %w", err)
	}

	target, err := h.leagueRepo.FindBySecret(ctx, cmd.Secret)
	if err != nil {
		if errors.As(err, &notFound) {
			logger.Log(common.LevelWarn, fmt.Sprintf("[League] Manager %s used an unknown league secret", cmd.ManagerID), nil)
			return nil, err
		}
		return nil, fmt.Errorf("failed to find league: %w", err)
	}

	if err := h.leagueRepo.AddMember(ctx, target.ID, cmd.ManagerID); err != nil {
		if errors.Is(err, league.ErrAlreadyInLeague) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to join league: %w", err)
	}
	target.Members = append(target.Members, cmd.ManagerID)

	logger.Log(common.LevelInfo, fmt.Sprintf("[League] Manager %s joined league %d", cmd.ManagerID, target.ID), map[string]interface{}{
		"manager_id": cmd.ManagerID.Value(),
		"league_id":  target.ID,
	})

	return &JoinLeagueResponse{League: target}, nil
}
