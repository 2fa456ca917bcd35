package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/throttle"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/config"
)

// withLocalStore points the CLI at a throwaway SQLite file and home directory
func withLocalStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("FM_DATABASE_TYPE", "sqlite")
	t.Setenv("FM_DATABASE_PATH", filepath.Join(dir, "league.db"))
	t.Setenv("FM_LOGGING_LEVEL", "error")
	t.Setenv("FM_TRANSFERS_COUNT", "2")
	return dir
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCLI_TransferWorkflow(t *testing.T) {
	withLocalStore(t)

	require.NoError(t, run(t, "manager", "register", "--user", "42", "--name", "Jose"))
	for _, p := range [][]string{
		{"Haaland", "Forward", "City"},
		{"Nunez", "Forward", "Liverpool"},
		{"Rodri", "Midfielder", "City"},
		{"Rice", "Midfielder", "Arsenal"},
	} {
		require.NoError(t, run(t, "player", "add", "--name", p[0], "--position", p[1], "--club", p[2]))
	}

	// The only registered manager is selected without flags
	require.NoError(t, run(t, "transfer", "create", "Haaland, Forward, City", "Nunez, Forward, Liverpool"))
	require.NoError(t, run(t, "transfer", "create", "--user", "42", "Rodri, Midfielder, City", "Rice, Midfielder, Arsenal"))

	err := run(t, "transfer", "create", "Rice, Midfielder, Arsenal", "Rodri, Midfielder, City")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transfers count is exceeded")

	err = run(t, "transfer", "abort", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 2")

	require.NoError(t, run(t, "transfer", "abort", "1"))
	require.NoError(t, run(t, "transfer", "list"))
	require.NoError(t, run(t, "transfer", "count"))
}

func TestCLI_UnknownPlayer(t *testing.T) {
	withLocalStore(t)

	require.NoError(t, run(t, "manager", "register", "--user", "7"))
	require.NoError(t, run(t, "player", "add", "--name", "Nunez", "--position", "Forward", "--club", "Liverpool"))

	err := run(t, "transfer", "create", "Salah, Forward, Liverpool", "Nunez, Forward, Liverpool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inbound player")
}

func TestCLI_DefaultManager(t *testing.T) {
	home := withLocalStore(t)

	require.NoError(t, run(t, "manager", "register", "--user", "1"))
	require.NoError(t, run(t, "manager", "register", "--user", "2"))

	// Two managers and no default: selection is ambiguous
	err := run(t, "transfer", "count")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config set-manager")

	require.NoError(t, run(t, "config", "set-manager", "--user", "2"))

	handler, err := config.NewUserConfigHandlerAt(filepath.Join(home, ".fantasy-manager"))
	require.NoError(t, err)
	userCfg, err := handler.Load()
	require.NoError(t, err)
	assert.Equal(t, "2", userCfg.DefaultExternalID)

	require.NoError(t, run(t, "transfer", "count"))
	require.NoError(t, run(t, "config", "clear-manager"))

	err = run(t, "transfer", "count")
	assert.Error(t, err)
}

func TestCLI_SetManagerRequiresFlag(t *testing.T) {
	withLocalStore(t)

	err := run(t, "config", "set-manager")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--manager-id or --user")
}

func TestCLI_RejectsBadArguments(t *testing.T) {
	withLocalStore(t)

	assert.Error(t, run(t, "transfer", "create", "Haaland"))
	assert.Error(t, run(t, "transfer", "create", "Haaland", "Nunez"))
	assert.Error(t, run(t, "transfer", "abort", "first"))
	assert.Error(t, run(t, "player", "list"))
	assert.Error(t, run(t, "manager", "register"))
}

func TestDescribeTransferError(t *testing.T) {
	managerID := shared.MustNewManagerID(1)

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"capacity", transfer.NewCapacityExceededError(managerID, 3), "already have 3 pending"},
		{"empty queue", transfer.NewInvalidPriorityError(0, 0), "you have no transfers"},
		{"out of range", transfer.NewInvalidPriorityError(4, 2), "between 1 and 2"},
		{"unknown player", shared.NewUnknownPlayerError("outbound", "Kane", "Forward", "Spurs"), "outbound player (Kane, Forward, Spurs) is not found"},
		{"store", transfer.NewStoreUnavailableError("list", errors.New("conn reset")), "temporarily unavailable"},
		{"reprioritize", transfer.NewReprioritizeFailedError(managerID, 1, errors.New("deadlock")), "temporarily unavailable"},
		{"throttled", throttle.ErrRateLimited, "wait a moment"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, describeTransferError(tt.err).Error(), tt.contains)
		})
	}
}

func TestCLI_LeagueAndTeam(t *testing.T) {
	withLocalStore(t)

	require.NoError(t, run(t, "manager", "register", "--user", "42", "--name", "Jose"))
	require.NoError(t, run(t, "league", "create", "Sunday", "League"))

	// Creating a league does not join it
	err := run(t, "league", "leave")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "you have not joined a league yet")

	err = run(t, "league", "join", "no-such-secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a league with secret no-such-secret is not found")

	err = run(t, "team", "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "you have not created a team yet")

	require.NoError(t, run(t, "team", "create", "Gunners"))
	require.NoError(t, run(t, "team", "info"))

	err = run(t, "team", "create", "Spurs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "you already have team Gunners")
}

func TestDescribeLeagueAndTeamErrors(t *testing.T) {
	managerID := shared.MustNewManagerID(1)

	tests := []struct {
		name     string
		describe func(error) error
		err      error
		contains string
	}{
		{"already in league", describeLeagueError, league.NewAlreadyInLeagueError(managerID, "Sunday"), "already in league Sunday"},
		{"not in league", describeLeagueError, league.NewNotInLeagueError(managerID), "not joined a league yet"},
		{"unknown secret", describeLeagueError, shared.NewNotFoundError(shared.ResourceLeague, "abc"), "secret abc is not found"},
		{"league falls through", describeLeagueError, throttle.ErrRateLimited, "wait a moment"},
		{"team exists", describeTeamError, team.NewAlreadyHasTeamError(managerID, "Gunners"), "already have team Gunners"},
		{"no team", describeTeamError, shared.NewNotFoundError(shared.ResourceTeam, "manager 1"), "not created a team yet"},
		{"team falls through", describeTeamError, errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.describe(tt.err).Error(), tt.contains)
		})
	}
}

func TestMaskPassword(t *testing.T) {
	assert.Equal(t, "postgresql://fm:****@db:5432/league", maskPassword("postgresql://fm:secret@db:5432/league"))
	assert.Equal(t, "postgresql://db:5432/league", maskPassword("postgresql://db:5432/league"))
	assert.Equal(t, "postgresql://fm@db/league", maskPassword("postgresql://fm@db/league"))
}

func TestParsePosition(t *testing.T) {
	position, err := parsePosition("2")
	require.NoError(t, err)
	assert.Equal(t, 2, position)

	_, err = parsePosition("two")
	assert.Error(t, err)
}
