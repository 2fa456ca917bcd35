package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Lookup errors

// Resource names a kind of record that can be looked up
type Resource string

const (
	ResourceManager  Resource = "manager"
	ResourcePlayer   Resource = "player"
	ResourceTransfer Resource = "transfer"
	ResourceLeague   Resource = "league"
	ResourceTeam     Resource = "team"
)

// NotFoundError reports a lookup that matched no record
type NotFoundError struct {
	*DomainError
	Resource Resource
	Key      string
}

func NewNotFoundError(resource Resource, key string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s not found: %s", resource, key)},
		Resource:    resource,
		Key:         key,
	}
}

// UnknownPlayerError is returned by the player directory when an application
// names a player that does not exist. Direction is "inbound" or "outbound".
type UnknownPlayerError struct {
	*NotFoundError
	Direction string
	Name      string
	Position  string
	Club      string
}

func NewUnknownPlayerError(direction, name, position, club string) *UnknownPlayerError {
	key := fmt.Sprintf("%s, %s, %s", name, position, club)
	nf := NewNotFoundError(ResourcePlayer, key)
	nf.Message = fmt.Sprintf("%s player (%s) is not found", direction, key)
	return &UnknownPlayerError{
		NotFoundError: nf,
		Direction:     direction,
		Name:          name,
		Position:      position,
		Club:          club,
	}
}

// Unwrap exposes the embedded NotFoundError to errors.As
func (e *UnknownPlayerError) Unwrap() error {
	return e.NotFoundError
}
