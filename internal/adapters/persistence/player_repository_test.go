package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/persistence"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/test/helpers"
)

func TestPlayerRepository_AddAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlayerRepository(db)

	p, err := player.NewPlayer("Salah", "Forward", "Liverpool")
	require.NoError(t, err)

	// Act - Add
	err = repo.Add(context.Background(), p)

	// Assert
	require.NoError(t, err)
	assert.False(t, p.ID.IsZero())

	// Act - FindByID
	found, err := repo.FindByID(context.Background(), p.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, "Salah", found.Name)
	assert.Equal(t, "Forward", found.Position)
	assert.Equal(t, "Liverpool", found.Club)
	assert.Nil(t, found.TeamID)
}

func TestPlayerRepository_FindBySpec(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlayerRepository(db)

	salah, _ := player.NewPlayer("Salah", "Forward", "Liverpool")
	require.NoError(t, repo.Add(context.Background(), salah))
	other, _ := player.NewPlayer("Salah", "Forward", "Roma")
	require.NoError(t, repo.Add(context.Background(), other))

	// Act
	found, err := repo.FindBySpec(context.Background(), player.Spec{Name: " Salah ", Position: "Forward", Club: "Liverpool"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, salah.ID, found.ID)
}

func TestPlayerRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlayerRepository(db)

	// Act
	_, errByID := repo.FindByID(context.Background(), shared.MustNewPlayerID(999))
	_, errBySpec := repo.FindBySpec(context.Background(), player.Spec{Name: "Nobody", Position: "Goalkeeper", Club: "None"})

	// Assert
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, errByID, &notFound)
	assert.ErrorAs(t, errBySpec, &notFound)
	assert.Equal(t, shared.ResourcePlayer, notFound.Resource)
}

func TestPlayerRepository_DuplicateIdentityRejected(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlayerRepository(db)

	first, _ := player.NewPlayer("Kane", "Forward", "Bayern")
	require.NoError(t, repo.Add(context.Background(), first))

	// Act
	duplicate, _ := player.NewPlayer("Kane", "Forward", "Bayern")
	err := repo.Add(context.Background(), duplicate)

	// Assert
	assert.Error(t, err)
}

func TestPlayerRepository_FindByIDsAndListByTeam(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlayerRepository(db)
	teamID := 4

	zaha, _ := player.NewPlayer("Zaha", "Winger", "Galatasaray")
	zaha.TeamID = &teamID
	alisson, _ := player.NewPlayer("Alisson", "Goalkeeper", "Liverpool")
	alisson.TeamID = &teamID
	free, _ := player.NewPlayer("Isco", "Midfielder", "Betis")
	for _, p := range []*player.Player{zaha, alisson, free} {
		require.NoError(t, repo.Add(context.Background(), p))
	}

	// Act
	byID, err := repo.FindByIDs(context.Background(), []shared.PlayerID{zaha.ID, free.ID, shared.MustNewPlayerID(999)})
	require.NoError(t, err)
	roster, err := repo.ListByTeam(context.Background(), teamID)
	require.NoError(t, err)

	// Assert
	assert.Len(t, byID, 2)
	assert.Equal(t, "Zaha", byID[zaha.ID].Name)
	assert.Equal(t, "Isco", byID[free.ID].Name)

	require.Len(t, roster, 2)
	assert.Equal(t, "Alisson", roster[0].Name)
	assert.Equal(t, "Zaha", roster[1].Name)
}
