package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
)

// GormTeamRepository implements team.TeamRepository using GORM
type GormTeamRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormTeamRepository creates a new GORM team repository
func NewGormTeamRepository(db *gorm.DB, clock shared.Clock) *GormTeamRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormTeamRepository{db: db, clock: clock}
}

// Add persists a new team unless the manager already owns one
func (r *GormTeamRepository) Add(ctx context.Context, t *team.Team) error {
	model := &TeamModel{
		Name:      t.Name,
		ManagerID: t.ManagerID.Value(),
		CreatedAt: r.clock.Now(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockManagerRow(tx, t.ManagerID); err != nil {
			return err
		}

		var existing TeamModel
		err := tx.Where("manager_id = ?", model.ManagerID).First(&existing).Error
		if err == nil {
			return team.NewAlreadyHasTeamError(t.ManagerID, existing.Name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing team: %w", err)
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to add team: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	t.ID = model.ID
	t.CreatedAt = model.CreatedAt
	return nil
}

// FindByID retrieves a team by ID
func (r *GormTeamRepository) FindByID(ctx context.Context, teamID int) (*team.Team, error) {
	return r.findOne(r.db.WithContext(ctx).Where("id = ?", teamID), strconv.Itoa(teamID))
}

// FindByManager retrieves the team a manager owns
func (r *GormTeamRepository) FindByManager(ctx context.Context, managerID shared.ManagerID) (*team.Team, error) {
	return r.findOne(r.db.WithContext(ctx).Where("manager_id = ?", managerID.Value()), "manager "+managerID.String())
}

func (r *GormTeamRepository) findOne(query *gorm.DB, key string) (*team.Team, error) {
	var model TeamModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(shared.ResourceTeam, key)
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	managerID, err := shared.NewManagerID(model.ManagerID)
	if err != nil {
		return nil, fmt.Errorf("invalid team manager ID in database: %w", err)
	}

	return &team.Team{
		ID:        model.ID,
		Name:      model.Name,
		ManagerID: managerID,
		CreatedAt: model.CreatedAt,
	}, nil
}

var _ team.TeamRepository = (*GormTeamRepository)(nil)
