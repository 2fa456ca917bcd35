package cli

import (
	"context"
	"fmt"
	"strconv"

	appManager "github.com/andrescamacho/fantasy-manager-go/internal/application/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/config"
)

// selectManager resolves the manager a command acts for.
// Priority: CLI flags (--manager-id or --user) > user config default > the only registered manager
func (rt *runtime) selectManager(ctx context.Context) (*manager.Manager, error) {
	opts := &appManager.SelectionOptions{
		ExternalIDFlag: externalID,
	}
	if managerID > 0 {
		id := managerID
		opts.ManagerIDFlag = &id
	}

	// A broken user config only matters when no flag was given
	if opts.ManagerIDFlag == nil && opts.ExternalIDFlag == "" {
		userConfigHandler, err := config.NewUserConfigHandler()
		if err != nil {
			return nil, fmt.Errorf("no manager specified and failed to load user config: %w", err)
		}
		userCfg, err := userConfigHandler.Load()
		if err != nil {
			return nil, fmt.Errorf("no manager specified and failed to load user config: %w", err)
		}
		opts.UserConfig = userCfg
	}

	return appManager.NewSelector(rt.managerRepo).Select(ctx, opts)
}

// parsePosition reads a 1-based queue position typed by the manager
func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("transfer number must be an integer, got %q", arg)
	}
	return position, nil
}

// displayTeam renders an optional team id
func displayTeam(teamID *int) string {
	if teamID == nil {
		return "-"
	}
	return strconv.Itoa(*teamID)
}
