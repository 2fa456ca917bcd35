package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
	"github.com/andrescamacho/fantasy-manager-go/test/helpers"
)

func TestCreateTeamHandler_OneTeamPerManager(t *testing.T) {
	repo := helpers.NewMockTeamRepository()
	handler := NewCreateTeamHandler(repo)
	managerID := shared.MustNewManagerID(1)

	resp, err := handler.Handle(context.Background(), &CreateTeamCommand{ManagerID: managerID, Name: "Gunners"})
	require.NoError(t, err)
	created := resp.(*CreateTeamResponse).Team
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Gunners", created.Name)

	_, err = handler.Handle(context.Background(), &CreateTeamCommand{ManagerID: managerID, Name: "Spurs"})

	var exists *team.AlreadyHasTeamError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "Gunners", exists.TeamName)
}

func TestCreateTeamHandler_RequiresName(t *testing.T) {
	handler := NewCreateTeamHandler(helpers.NewMockTeamRepository())

	_, err := handler.Handle(context.Background(), &CreateTeamCommand{ManagerID: shared.MustNewManagerID(1)})

	var validation *shared.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "name", validation.Field)
}
