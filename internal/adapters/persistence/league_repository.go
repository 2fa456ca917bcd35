package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// GormLeagueRepository implements league.LeagueRepository using GORM
type GormLeagueRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormLeagueRepository creates a new GORM league repository.
// A nil clock means the real system clock.
func NewGormLeagueRepository(db *gorm.DB, clock shared.Clock) *GormLeagueRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormLeagueRepository{db: db, clock: clock}
}

// Add persists a new league and assigns its ID
func (r *GormLeagueRepository) Add(ctx context.Context, l *league.League) error {
	model := &LeagueModel{
		Name:      l.Name,
		Secret:    l.Secret,
		OwnerID:   l.OwnerID.Value(),
		CreatedAt: r.clock.Now(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add league: %w", err)
	}

	l.ID = model.ID
	l.CreatedAt = model.CreatedAt
	return nil
}

// FindByID retrieves a league with its members
func (r *GormLeagueRepository) FindByID(ctx context.Context, leagueID int) (*league.League, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ?", leagueID), strconv.Itoa(leagueID))
}

// FindBySecret retrieves the league a join secret belongs to
func (r *GormLeagueRepository) FindBySecret(ctx context.Context, secret string) (*league.League, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("secret = ?", secret), secret)
}

// FindByMember retrieves the league managerID has joined
func (r *GormLeagueRepository) FindByMember(ctx context.Context, managerID shared.ManagerID) (*league.League, error) {
	query := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&LeagueMemberModel{}).Select("league_id").Where("manager_id = ?", managerID.Value()))
	return r.findOne(ctx, query, "member "+managerID.String())
}

// AddMember joins managerID to a league; the membership check and the insert share a transaction
func (r *GormLeagueRepository) AddMember(ctx context.Context, leagueID int, managerID shared.ManagerID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockManagerRow(tx, managerID); err != nil {
			return err
		}

		var current LeagueModel
		err := tx.Joins("JOIN league_members ON league_members.league_id = leagues.id").
			Where("league_members.manager_id = ?", managerID.Value()).
			First(&current).Error
		if err == nil {
			return league.NewAlreadyInLeagueError(managerID, current.Name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check league membership: %w", err)
		}

		var exists int64
		if err := tx.Model(&LeagueModel{}).Where("id = ?", leagueID).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to find league: %w", err)
		}
		if exists == 0 {
			return shared.NewNotFoundError(shared.ResourceLeague, strconv.Itoa(leagueID))
		}

		member := &LeagueMemberModel{
			LeagueID:  leagueID,
			ManagerID: managerID.Value(),
			JoinedAt:  r.clock.Now(),
		}
		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("failed to add league member: %w", err)
		}
		return nil
	})
}

// RemoveMember drops managerID from a league
func (r *GormLeagueRepository) RemoveMember(ctx context.Context, leagueID int, managerID shared.ManagerID) error {
	result := r.db.WithContext(ctx).
		Where("league_id = ? AND manager_id = ?", leagueID, managerID.Value()).
		Delete(&LeagueMemberModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove league member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(shared.ResourceLeague, fmt.Sprintf("%d/member %s", leagueID, managerID))
	}
	return nil
}

func (r *GormLeagueRepository) findOne(ctx context.Context, query *gorm.DB, key string) (*league.League, error) {
	var model LeagueModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(shared.ResourceLeague, key)
		}
		return nil, fmt.Errorf("failed to find league: %w", err)
	}

	var members []LeagueMemberModel
	if err := r.db.WithContext(ctx).
		Where("league_id = ?", model.ID).
		Order("joined_at ASC, manager_id ASC").
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list league members: %w", err)
	}

	return r.modelToLeague(&model, members)
}

func (r *GormLeagueRepository) modelToLeague(model *LeagueModel, members []LeagueMemberModel) (*league.League, error) {
	ownerID, err := shared.NewManagerID(model.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid league owner ID in database: %w", err)
	}

	l := &league.League{
		ID:        model.ID,
		Name:      model.Name,
		Secret:    model.Secret,
		OwnerID:   ownerID,
		Members:   make([]shared.ManagerID, 0, len(members)),
		CreatedAt: model.CreatedAt,
	}
	for _, member := range members {
		managerID, err := shared.NewManagerID(member.ManagerID)
		if err != nil {
			return nil, fmt.Errorf("invalid league member ID in database: %w", err)
		}
		l.Members = append(l.Members, managerID)
	}
	return l, nil
}

var _ league.LeagueRepository = (*GormLeagueRepository)(nil)
