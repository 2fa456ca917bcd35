package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/test/helpers"
)

func TestAddPlayerHandler_AddsToDirectory(t *testing.T) {
	repo := helpers.NewMockPlayerRepository()
	handler := NewAddPlayerHandler(repo)
	teamID := 3

	resp, err := handler.Handle(context.Background(), &AddPlayerCommand{
		Name:     "Saka",
		Position: "Winger",
		Club:     "Arsenal",
		TeamID:   &teamID,
	})

	require.NoError(t, err)
	added := resp.(*AddPlayerResponse).Player
	assert.False(t, added.ID.IsZero())

	found, err := repo.FindBySpec(context.Background(), player.Spec{Name: "Saka", Position: "Winger", Club: "Arsenal"})
	require.NoError(t, err)
	assert.Equal(t, added.ID, found.ID)
	assert.Equal(t, 3, *found.TeamID)
}

func TestAddPlayerHandler_Validation(t *testing.T) {
	handler := NewAddPlayerHandler(helpers.NewMockPlayerRepository())
	badTeam := 0

	tests := []struct {
		name  string
		cmd   *AddPlayerCommand
		field string
	}{
		{name: "missing name", cmd: &AddPlayerCommand{Position: "Winger", Club: "Arsenal"}, field: "name"},
		{name: "missing club", cmd: &AddPlayerCommand{Name: "Saka", Position: "Winger"}, field: "club"},
		{name: "invalid team", cmd: &AddPlayerCommand{Name: "Saka", Position: "Winger", Club: "Arsenal", TeamID: &badTeam}, field: "team_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tt.cmd)

			var validation *shared.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
		})
	}
}
