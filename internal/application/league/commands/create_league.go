package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// CreateLeagueCommand creates a league owned by the manager
type CreateLeagueCommand struct {
	ManagerID shared.ManagerID
	Name      string `validate:"required,max=255"`
}

// ScopeManagerID implements common.ManagerScoped
func (c *CreateLeagueCommand) ScopeManagerID() shared.ManagerID {
	return c.ManagerID
}

// CreateLeagueResponse carries the new league and the secret other managers join with
type CreateLeagueResponse struct {
	League *league.League
}

// CreateLeagueHandler handles the CreateLeague command
type CreateLeagueHandler struct {
	leagueRepo league.LeagueRepository
}

// NewCreateLeagueHandler creates a new CreateLeagueHandler
func NewCreateLeagueHandler(leagueRepo league.LeagueRepository) *CreateLeagueHandler {
	return &CreateLeagueHandler{leagueRepo: leagueRepo}
}

// Handle executes the CreateLeague command
func (h *CreateLeagueHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CreateLeagueCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateLeagueCommand")
	}

	if err := common.ValidateRequest(cmd); err != nil {
		return nil, err
	}

	l, err := league.NewLeague(cmd.Name, cmd.ManagerID)
	if err != nil {
		return nil, err
	}

	if err := h.leagueRepo.Add(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to save league: %w", err)
	}

	common.LoggerFromContext(ctx).Log(common.LevelInfo, fmt.Sprintf("[League] Manager %s created league %d", cmd.ManagerID, l.ID), map[string]interface{}{
		"manager_id": cmd.ManagerID.Value(),
		"league_id":  l.ID,
		"name":       l.Name,
	})

	return &CreateLeagueResponse{League: l}, nil
}
