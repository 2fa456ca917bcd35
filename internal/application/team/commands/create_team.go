package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
)

// CreateTeamCommand creates the manager's team
type CreateTeamCommand struct {
	ManagerID shared.ManagerID
	Name      string `validate:"required,max=255"`
}

// ScopeManagerID implements common.ManagerScoped
func (c *CreateTeamCommand) ScopeManagerID() shared.ManagerID {
	return c.ManagerID
}

// CreateTeamResponse carries the new team
type CreateTeamResponse struct {
	Team *team.Team
}

// CreateTeamHandler handles the CreateTeam command
type CreateTeamHandler struct {
	teamRepo team.TeamRepository
}

// NewCreateTeamHandler creates a new CreateTeamHandler
func NewCreateTeamHandler(teamRepo team.TeamRepository) *CreateTeamHandler {
	return &CreateTeamHandler{teamRepo: teamRepo}
}

// Handle executes the CreateTeam command
func (h *CreateTeamHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CreateTeamCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateTeamCommand")
	}

	if err := common.ValidateRequest(cmd); err != nil {
		return nil, err
	}

	t, err := team.NewTeam(cmd.Name, cmd.ManagerID)
	if err != nil {
		return nil, err
	}

	if err := h.teamRepo.Add(ctx, t); err != nil {
		if errors.Is(err, team.ErrTeamExists) {
			common.LoggerFromContext(ctx).Log(common.LevelWarn, fmt.Sprintf("[Team] Manager %s already has a team", cmd.ManagerID), nil)
			return nil, err
		}
		return nil, fmt.Errorf("failed to save team: %w", err)
	}

	common.LoggerFromContext(ctx).Log(common.LevelInfo, fmt.Sprintf("[Team] Manager %s created team %d", cmd.ManagerID, t.ID), map[string]interface{}{
		"manager_id": cmd.ManagerID.Value(),
		"team_id":    t.ID,
		"name":       t.Name,
	})

	return &CreateTeamResponse{Team: t}, nil
}
