package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
	"github.com/andrescamacho/fantasy-manager-go/test/helpers"
)

func TestGetTeamHandler_ReturnsRoster(t *testing.T) {
	ctx := context.Background()
	teams := helpers.NewMockTeamRepository()
	players := helpers.NewMockPlayerRepository()
	managerID := shared.MustNewManagerID(1)

	tm, err := team.NewTeam("Gunners", managerID)
	require.NoError(t, err)
	require.NoError(t, teams.Add(ctx, tm))

	saka := players.AddPlayer("Saka", "Winger", "Arsenal")
	saka.TeamID = &tm.ID
	odegaard := players.AddPlayer("Odegaard", "Midfielder", "Arsenal")
	odegaard.TeamID = &tm.ID
	players.AddPlayer("Salah", "Winger", "Liverpool")

	resp, err := NewGetTeamHandler(teams, players).Handle(ctx, &GetTeamQuery{ManagerID: managerID})

	require.NoError(t, err)
	result := resp.(*GetTeamResponse)
	assert.Equal(t, "Gunners", result.Team.Name)
	require.Len(t, result.Roster, 2)
	assert.Equal(t, "Odegaard", result.Roster[0].Name)
	assert.Equal(t, "Saka", result.Roster[1].Name)
}

func TestGetTeamHandler_NoTeam(t *testing.T) {
	handler := NewGetTeamHandler(helpers.NewMockTeamRepository(), helpers.NewMockPlayerRepository())

	_, err := handler.Handle(context.Background(), &GetTeamQuery{ManagerID: shared.MustNewManagerID(1)})

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, shared.ResourceTeam, notFound.Resource)
}
