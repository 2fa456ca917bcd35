package player

import (
	"strings"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// Player is a footballer known to the player directory
type Player struct {
	ID       shared.PlayerID
	Name     string
	Position string
	Club     string
	TeamID   *int
}

// NewPlayer creates an unsaved player; the repository assigns the ID
func NewPlayer(name, position, club string) (*Player, error) {
	spec := Spec{Name: name, Position: position, Club: club}.Normalize()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &Player{
		Name:     spec.Name,
		Position: spec.Position,
		Club:     spec.Club,
	}, nil
}

// Label renders the player the way managers type it: "Name, Position, Club"
func (p *Player) Label() string {
	return p.Name + ", " + p.Position + ", " + p.Club
}

// Spec identifies a player the way a manager names it in a transfer application
type Spec struct {
	Name     string
	Position string
	Club     string
}

// Normalize trims surrounding whitespace from every field
func (s Spec) Normalize() Spec {
	return Spec{
		Name:     strings.TrimSpace(s.Name),
		Position: strings.TrimSpace(s.Position),
		Club:     strings.TrimSpace(s.Club),
	}
}

func (s Spec) Validate() error {
	if s.Name == "" {
		return shared.NewValidationError("name", "is required")
	}
	if s.Position == "" {
		return shared.NewValidationError("position", "is required")
	}
	if s.Club == "" {
		return shared.NewValidationError("club", "is required")
	}
	return nil
}

// ParseSpec parses "Name, Position, Club"
func ParseSpec(text string) (Spec, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return Spec{}, shared.NewValidationError("player", "expected \"name, position, club\"")
	}

	spec := Spec{Name: parts[0], Position: parts[1], Club: parts[2]}.Normalize()
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}
