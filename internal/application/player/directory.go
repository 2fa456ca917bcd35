package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// Directions of a transfer application
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Directory resolves players named in transfer applications.
// Unknown players are reported here, before the transfer queue is involved.
type Directory struct {
	playerRepo player.PlayerRepository
}

// NewDirectory creates a player directory backed by playerRepo
func NewDirectory(playerRepo player.PlayerRepository) *Directory {
	return &Directory{playerRepo: playerRepo}
}

// Resolve finds the player matching spec, returning a *shared.UnknownPlayerError
// tagged with direction when none exists
func (d *Directory) Resolve(ctx context.Context, direction string, spec player.Spec) (*player.Player, error) {
	spec = spec.Normalize()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	p, err := d.playerRepo.FindBySpec(ctx, spec)
	if err != nil {
		var notFound *shared.NotFoundError
		if errors.As(err, &notFound) {
			return nil, shared.NewUnknownPlayerError(direction, spec.Name, spec.Position, spec.Club)
		}
		return nil, fmt.Errorf("failed to resolve %s player: %w", direction, err)
	}
	return p, nil
}

// ResolvePair resolves both sides of a transfer application, inbound first
func (d *Directory) ResolvePair(ctx context.Context, inbound, outbound player.Spec) (*player.Player, *player.Player, error) {
	in, err := d.Resolve(ctx, DirectionInbound, inbound)
	if err != nil {
		return nil, nil, err
	}
	out, err := d.Resolve(ctx, DirectionOutbound, outbound)
	if err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

// PlayersByID loads several players for display; unknown ids are absent from the map
func (d *Directory) PlayersByID(ctx context.Context, ids []shared.PlayerID) (map[shared.PlayerID]*player.Player, error) {
	players, err := d.playerRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	return players, nil
}
