package team

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// ErrTeamExists is the category of AlreadyHasTeamError
var ErrTeamExists = errors.New("manager already has a team")

// Team is the roster a manager builds; every manager owns at most one
type Team struct {
	ID        int
	Name      string
	ManagerID shared.ManagerID
	CreatedAt time.Time
}

// NewTeam creates an unsaved team for managerID
func NewTeam(name string, managerID shared.ManagerID) (*Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "is required")
	}
	if len(name) > 255 {
		return nil, shared.NewValidationError("name", "must be at most 255 characters")
	}
	if managerID.IsZero() {
		return nil, shared.NewValidationError("manager_id", "is required")
	}

	return &Team{Name: name, ManagerID: managerID}, nil
}

// AlreadyHasTeamError is returned when a manager who owns a team creates another
type AlreadyHasTeamError struct {
	*shared.DomainError
	ManagerID shared.ManagerID
	TeamName  string
}

func NewAlreadyHasTeamError(managerID shared.ManagerID, teamName string) *AlreadyHasTeamError {
	return &AlreadyHasTeamError{
		DomainError: shared.NewDomainError(fmt.Sprintf("manager %s already has team %s", managerID, teamName)),
		ManagerID:   managerID,
		TeamName:    teamName,
	}
}

func (e *AlreadyHasTeamError) Is(target error) bool {
	return target == ErrTeamExists
}
