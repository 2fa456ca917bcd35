package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// GormPlayerRepository implements player.PlayerRepository using GORM
type GormPlayerRepository struct {
	db *gorm.DB
}

// NewGormPlayerRepository creates a new GORM player repository
func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

// FindByID retrieves a player by ID
func (r *GormPlayerRepository) FindByID(ctx context.Context, playerID shared.PlayerID) (*player.Player, error) {
	var model PlayerModel
	result := r.db.WithContext(ctx).Where("id = ?", playerID.Value()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(shared.ResourcePlayer, playerID.String())
		}
		return nil, fmt.Errorf("failed to find player: %w", result.Error)
	}

	return r.modelToPlayer(&model)
}

// FindBySpec retrieves a player by name, position and club
func (r *GormPlayerRepository) FindBySpec(ctx context.Context, spec player.Spec) (*player.Player, error) {
	spec = spec.Normalize()

	var model PlayerModel
	result := r.db.WithContext(ctx).
		Where("name = ? AND position = ? AND club = ?", spec.Name, spec.Position, spec.Club).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(shared.ResourcePlayer, fmt.Sprintf("%s, %s, %s", spec.Name, spec.Position, spec.Club))
		}
		return nil, fmt.Errorf("failed to find player: %w", result.Error)
	}

	return r.modelToPlayer(&model)
}

// FindByIDs retrieves several players at once; missing ids are absent from the result
func (r *GormPlayerRepository) FindByIDs(ctx context.Context, playerIDs []shared.PlayerID) (map[shared.PlayerID]*player.Player, error) {
	players := make(map[shared.PlayerID]*player.Player, len(playerIDs))
	if len(playerIDs) == 0 {
		return players, nil
	}

	ids := make([]int, 0, len(playerIDs))
	for _, id := range playerIDs {
		ids = append(ids, id.Value())
	}

	var models []PlayerModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find players: %w", err)
	}

	for i := range models {
		p, err := r.modelToPlayer(&models[i])
		if err != nil {
			return nil, err
		}
		players[p.ID] = p
	}

	return players, nil
}

// ListByTeam retrieves the roster of a team ordered by name
func (r *GormPlayerRepository) ListByTeam(ctx context.Context, teamID int) ([]*player.Player, error) {
	var models []PlayerModel
	if err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list team players: %w", err)
	}

	players := make([]*player.Player, 0, len(models))
	for i := range models {
		p, err := r.modelToPlayer(&models[i])
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, nil
}

// Add persists a new player and assigns its ID
func (r *GormPlayerRepository) Add(ctx context.Context, p *player.Player) error {
	model := &PlayerModel{
		Name:     p.Name,
		Position: p.Position,
		Club:     p.Club,
		TeamID:   p.TeamID,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add player: %w", err)
	}

	id, err := shared.NewPlayerID(model.ID)
	if err != nil {
		return fmt.Errorf("invalid player ID assigned: %w", err)
	}
	p.ID = id
	return nil
}

func (r *GormPlayerRepository) modelToPlayer(model *PlayerModel) (*player.Player, error) {
	playerID, err := shared.NewPlayerID(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID in database: %w", err)
	}

	return &player.Player{
		ID:       playerID,
		Name:     model.Name,
		Position: model.Position,
		Club:     model.Club,
		TeamID:   model.TeamID,
	}, nil
}
