package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
)

// AddPlayerCommand adds a footballer to the player directory
type AddPlayerCommand struct {
	Name     string `validate:"required,max=255"`
	Position string `validate:"required,max=100"`
	Club     string `validate:"required,max=255"`
	TeamID   *int   `validate:"omitempty,min=1"` // Optional: roster the player belongs to
}

// AddPlayerResponse represents the result of adding a player
type AddPlayerResponse struct {
	Player *player.Player
}

// AddPlayerHandler handles the AddPlayer command
type AddPlayerHandler struct {
	playerRepo player.PlayerRepository
}

// NewAddPlayerHandler creates a new AddPlayerHandler
func NewAddPlayerHandler(playerRepo player.PlayerRepository) *AddPlayerHandler {
	return &AddPlayerHandler{
		playerRepo: playerRepo,
	}
}

// Handle executes the AddPlayer command
func (h *AddPlayerHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*AddPlayerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddPlayerCommand")
	}

	if err := common.ValidateRequest(cmd); err != nil {
		return nil, err
	}

	p, err := player.NewPlayer(cmd.Name, cmd.Position, cmd.Club)
	if err != nil {
		return nil, err
	}
	p.TeamID = cmd.TeamID

	if err := h.playerRepo.Add(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	common.LoggerFromContext(ctx).Log(common.LevelInfo, fmt.Sprintf("[PlayerDirectory] Added %s", p.Label()), map[string]interface{}{
		"player_id": p.ID.Value(),
	})

	return &AddPlayerResponse{
		Player: p,
	}, nil
}
