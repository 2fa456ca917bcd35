package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// RegisterManagerCommand registers a chat user as a manager
type RegisterManagerCommand struct {
	ExternalID string `validate:"required,max=64"` // chat user id
	Name       string `validate:"max=255"`
}

// RegisterManagerResponse represents the result of registering a manager.
// Created is false when the chat user was already registered.
type RegisterManagerResponse struct {
	Manager *manager.Manager
	Created bool
}

// RegisterManagerHandler handles the RegisterManager command
type RegisterManagerHandler struct {
	managerRepo manager.ManagerRepository
}

// NewRegisterManagerHandler creates a new RegisterManagerHandler
func NewRegisterManagerHandler(managerRepo manager.ManagerRepository) *RegisterManagerHandler {
	return &RegisterManagerHandler{
		managerRepo: managerRepo,
	}
}

// Handle executes the RegisterManager command
func (h *RegisterManagerHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RegisterManagerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RegisterManagerCommand")
	}

	if err := common.ValidateRequest(cmd); err != nil {
		return nil, err
	}

	existing, err := h.managerRepo.FindByExternalID(ctx, cmd.ExternalID)
	if err == nil {
		return &RegisterManagerResponse{Manager: existing, Created: false}, nil
	}
	var notFound *shared.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("failed to look up manager: %w", err)
	}

	m, err := manager.NewManager(cmd.ExternalID, cmd.Name)
	if err != nil {
		return nil, err
	}

	if err := h.managerRepo.Add(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save manager: %w", err)
	}

	common.LoggerFromContext(ctx).Log(common.LevelInfo, fmt.Sprintf("[Manager] Registered manager %s for chat user %s", m.ID, m.ExternalID), nil)

	return &RegisterManagerResponse{
		Manager: m,
		Created: true,
	}, nil
}
