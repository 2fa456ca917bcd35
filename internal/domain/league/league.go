package league

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

const maxNameLength = 255

// League groups managers who compete against each other.
// Managers join with the league's Secret; a manager belongs to at most one league.
type League struct {
	ID        int
	Name      string
	Secret    string
	OwnerID   shared.ManagerID
	Members   []shared.ManagerID
	CreatedAt time.Time
}

// NewLeague creates an unsaved league owned by ownerID with a fresh join secret.
// The owner is not a member until they join.
func NewLeague(name string, ownerID shared.ManagerID) (*League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "is required")
	}
	if len(name) > maxNameLength {
		return nil, shared.NewValidationError("name", "must be at most 255 characters")
	}
	if ownerID.IsZero() {
		return nil, shared.NewValidationError("owner_id", "is required")
	}

	return &League{
		Name:    name,
		Secret:  uuid.NewString(),
		OwnerID: ownerID,
	}, nil
}

// HasMember reports whether managerID has joined the league
func (l *League) HasMember(managerID shared.ManagerID) bool {
	for _, member := range l.Members {
		if member.Equals(managerID) {
			return true
		}
	}
	return false
}

// IsOwnedBy reports whether managerID created the league
func (l *League) IsOwnedBy(managerID shared.ManagerID) bool {
	return l.OwnerID.Equals(managerID)
}
