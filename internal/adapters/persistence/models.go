package persistence

import (
	"time"
)

// ManagerModel represents the managers table
type ManagerModel struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement"`
	ExternalID string    `gorm:"column:external_id;unique;not null"`
	Name       string    `gorm:"column:name"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (ManagerModel) TableName() string {
	return "managers"
}

// PlayerModel represents the players table (the player directory).
// A player is identified by name, position and club together.
type PlayerModel struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;size:255;not null;uniqueIndex:idx_players_identity,priority:1"`
	Position string `gorm:"column:position;size:100;not null;uniqueIndex:idx_players_identity,priority:2"`
	Club     string `gorm:"column:club;size:255;not null;uniqueIndex:idx_players_identity,priority:3"`
	TeamID   *int   `gorm:"column:team_id;index"`
}

func (PlayerModel) TableName() string {
	return "players"
}

// TransferModel represents the transfers table.
// (manager_id, priority) is indexed but not unique: the shift decrements many rows in
// one statement and postgres checks non-deferred unique indexes row by row.
type TransferModel struct {
	ID               string        `gorm:"column:id;primaryKey;size:36"`
	ManagerID        int           `gorm:"column:manager_id;not null;index:idx_transfers_manager_priority,priority:1"`
	Manager          *ManagerModel `gorm:"foreignKey:ManagerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	InboundPlayerID  int           `gorm:"column:inbound_player_id;not null"`
	OutboundPlayerID int           `gorm:"column:outbound_player_id;not null"`
	Priority         int           `gorm:"column:priority;not null;index:idx_transfers_manager_priority,priority:2"`
	CreatedAt        time.Time     `gorm:"column:created_at;not null"`
}

func (TransferModel) TableName() string {
	return "transfers"
}

// LeagueModel represents the leagues table
type LeagueModel struct {
	ID        int           `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string        `gorm:"column:name;size:255;not null"`
	Secret    string        `gorm:"column:secret;size:64;uniqueIndex;not null"`
	OwnerID   int           `gorm:"column:owner_id;not null;index"`
	Owner     *ManagerModel `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time     `gorm:"column:created_at;not null"`
}

func (LeagueModel) TableName() string {
	return "leagues"
}

// LeagueMemberModel represents the league_members table.
// manager_id is unique: a manager belongs to at most one league.
type LeagueMemberModel struct {
	LeagueID  int          `gorm:"column:league_id;primaryKey"`
	League    *LeagueModel `gorm:"foreignKey:LeagueID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ManagerID int          `gorm:"column:manager_id;primaryKey;uniqueIndex:idx_league_members_manager"`
	JoinedAt  time.Time    `gorm:"column:joined_at;not null"`
}

func (LeagueMemberModel) TableName() string {
	return "league_members"
}

// TeamModel represents the teams table; players.team_id points here
type TeamModel struct {
	ID        int           `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string        `gorm:"column:name;size:255;not null"`
	ManagerID int           `gorm:"column:manager_id;not null;uniqueIndex"`
	Manager   *ManagerModel `gorm:"foreignKey:ManagerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time     `gorm:"column:created_at;not null"`
}

func (TeamModel) TableName() string {
	return "teams"
}
