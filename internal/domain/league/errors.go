package league

import (
	"errors"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

var (
	ErrAlreadyInLeague = errors.New("manager is already in a league")
	ErrNotInLeague     = errors.New("manager has not joined a league")
)

// AlreadyInLeagueError is returned when a member of one league tries to join another
type AlreadyInLeagueError struct {
	*shared.DomainError
	ManagerID  shared.ManagerID
	LeagueName string
}

func NewAlreadyInLeagueError(managerID shared.ManagerID, leagueName string) *AlreadyInLeagueError {
	return &AlreadyInLeagueError{
		DomainError: shared.NewDomainError(fmt.Sprintf("manager %s is already in league %s", managerID, leagueName)),
		ManagerID:   managerID,
		LeagueName:  leagueName,
	}
}

func (e *AlreadyInLeagueError) Is(target error) bool {
	return target == ErrAlreadyInLeague
}

// NotInLeagueError is returned when a league action needs a membership the manager lacks
type NotInLeagueError struct {
	*shared.DomainError
	ManagerID shared.ManagerID
}

func NewNotInLeagueError(managerID shared.ManagerID) *NotInLeagueError {
	return &NotInLeagueError{
		DomainError: shared.NewDomainError(fmt.Sprintf("manager %s has not joined a league", managerID)),
		ManagerID:   managerID,
	}
}

func (e *NotInLeagueError) Is(target error) bool {
	return target == ErrNotInLeague
}
