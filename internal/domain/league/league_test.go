package league

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

func TestNewLeague(t *testing.T) {
	owner := shared.MustNewManagerID(4)

	l, err := NewLeague("  Sunday League ", owner)

	require.NoError(t, err)
	assert.Equal(t, "Sunday League", l.Name)
	assert.NotEmpty(t, l.Secret)
	assert.True(t, l.IsOwnedBy(owner))
	assert.False(t, l.HasMember(owner))
}

func TestNewLeague_SecretsDiffer(t *testing.T) {
	owner := shared.MustNewManagerID(4)

	first, err := NewLeague("A", owner)
	require.NoError(t, err)
	second, err := NewLeague("A", owner)
	require.NoError(t, err)

	assert.NotEqual(t, first.Secret, second.Secret)
}

func TestNewLeague_Validation(t *testing.T) {
	tests := []struct {
		name      string
		league    string
		owner     shared.ManagerID
		wantField string
	}{
		{"blank name", "   ", shared.MustNewManagerID(1), "name"},
		{"long name", strings.Repeat("x", 256), shared.MustNewManagerID(1), "name"},
		{"no owner", "Sunday League", shared.ManagerID{}, "owner_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLeague(tt.league, tt.owner)

			var validation *shared.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.wantField, validation.Field)
		})
	}
}

func TestLeague_HasMember(t *testing.T) {
	l := &League{Members: []shared.ManagerID{shared.MustNewManagerID(2), shared.MustNewManagerID(5)}}

	assert.True(t, l.HasMember(shared.MustNewManagerID(5)))
	assert.False(t, l.HasMember(shared.MustNewManagerID(3)))
}

func TestErrors_MatchCategories(t *testing.T) {
	managerID := shared.MustNewManagerID(1)

	assert.ErrorIs(t, NewAlreadyInLeagueError(managerID, "Sunday League"), ErrAlreadyInLeague)
	assert.ErrorIs(t, NewNotInLeagueError(managerID), ErrNotInLeague)
	assert.NotErrorIs(t, NewNotInLeagueError(managerID), ErrAlreadyInLeague)
	assert.Contains(t, NewAlreadyInLeagueError(managerID, "Sunday League").Error(), "Sunday League")
}
