package manager

import (
	"time"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// Manager is a registered user who owns at most one team and files transfer requests
type Manager struct {
	ID         shared.ManagerID
	ExternalID string // chat user id
	Name       string
	CreatedAt  time.Time
}

// NewManager creates an unsaved manager
func NewManager(externalID, name string) (*Manager, error) {
	if externalID == "" {
		return nil, shared.NewValidationError("external_id", "is required")
	}
	return &Manager{
		ExternalID: externalID,
		Name:       name,
	}, nil
}
