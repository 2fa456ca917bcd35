package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/persistence"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/test/helpers"
)

func TestManagerRepository_AddAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC))
	repo := persistence.NewGormManagerRepository(db, clock)

	m, err := manager.NewManager("tg-1001", "Jose")
	require.NoError(t, err)

	// Act
	require.NoError(t, repo.Add(context.Background(), m))
	byID, err := repo.FindByID(context.Background(), m.ID)
	require.NoError(t, err)
	byExternal, err := repo.FindByExternalID(context.Background(), "tg-1001")
	require.NoError(t, err)

	// Assert
	assert.False(t, m.ID.IsZero())
	assert.Equal(t, m.ID, byID.ID)
	assert.Equal(t, m.ID, byExternal.ID)
	assert.Equal(t, "Jose", byID.Name)
	assert.WithinDuration(t, clock.Now(), byID.CreatedAt, time.Second)
}

func TestManagerRepository_ExternalIDIsUnique(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormManagerRepository(db, nil)

	first, _ := manager.NewManager("tg-1", "A")
	require.NoError(t, repo.Add(context.Background(), first))

	// Act
	second, _ := manager.NewManager("tg-1", "B")
	err := repo.Add(context.Background(), second)

	// Assert
	assert.Error(t, err)
}

func TestManagerRepository_NotFoundAndListAll(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormManagerRepository(db, nil)

	_, err := repo.FindByExternalID(context.Background(), "missing")
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, shared.ResourceManager, notFound.Resource)

	for _, ext := range []string{"tg-1", "tg-2"} {
		m, _ := manager.NewManager(ext, ext)
		require.NoError(t, repo.Add(context.Background(), m))
	}

	// Act
	all, err := repo.ListAll(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "tg-1", all[0].ExternalID)
	assert.Equal(t, "tg-2", all[1].ExternalID)
}
