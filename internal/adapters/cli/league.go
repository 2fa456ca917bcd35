package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	leagueCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/league/commands"
	leagueQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/league/queries"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

// NewLeagueCommand creates the league command with subcommands
func NewLeagueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "league",
		Short: "Create, join and leave leagues",
		Long: `Managers compete in leagues. Creating a league issues a secret that
other managers join with; a manager is in at most one league at a time.

Examples:
  fantasy-manager league create Sunday League
  fantasy-manager league join 3f1c2a9e-5b8d-4c1e-9a7f-2d6b8e0c4a11 --user 654321
  fantasy-manager league info
  fantasy-manager league leave`,
	}

	cmd.AddCommand(newLeagueCreateCommand())
	cmd.AddCommand(newLeagueJoinCommand())
	cmd.AddCommand(newLeagueLeaveCommand())
	cmd.AddCommand(newLeagueInfoCommand())

	return cmd
}

func newLeagueCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a league and print its join secret",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := rt.Context()
			m, err := rt.selectManager(ctx)
			if err != nil {
				return err
			}

			response, err := rt.mediator.Send(ctx, &leagueCommands.CreateLeagueCommand{
				ManagerID: m.ID,
				Name:      strings.Join(args, " "),
			})
			if err != nil {
				return describeLeagueError(err)
			}

			l := response.(*leagueCommands.CreateLeagueResponse).League
			fmt.Printf("✓ League %s created\n", l.Name)
			fmt.Printf("  Secret: %s\n", l.Secret)
			fmt.Println("\nShare the secret; managers join with: fantasy-manager league join", l.Secret)

			return nil
		},
	}
}

func newLeagueJoinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "join <secret>",
		Short: "Join a league with its secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := rt.Context()
			m, err := rt.selectManager(ctx)
			if err != nil {
				return err
			}

			response, err := rt.mediator.Send(ctx, &leagueCommands.JoinLeagueCommand{
				ManagerID: m.ID,
				Secret:    strings.TrimSpace(args[0]),
			})
			if err != nil {
				return describeLeagueError(err)
			}

			l := response.(*leagueCommands.JoinLeagueResponse).League
			fmt.Printf("✓ You have joined league %s (%d managers)\n", l.Name, len(l.Members))

			return nil
		},
	}
}

func newLeagueLeaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leave",
		Short: "Leave the league you joined",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := rt.Context()
			m, err := rt.selectManager(ctx)
			if err != nil {
				return err
			}

			response, err := rt.mediator.Send(ctx, &leagueCommands.LeaveLeagueCommand{ManagerID: m.ID})
			if err != nil {
				return describeLeagueError(err)
			}

			fmt.Printf("✓ League %s left\n", response.(*leagueCommands.LeaveLeagueResponse).League.Name)

			return nil
		},
	}
}

func newLeagueInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the league you joined",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := rt.Context()
			m, err := rt.selectManager(ctx)
			if err != nil {
				return err
			}

			response, err := rt.mediator.Send(ctx, &leagueQueries.GetLeagueQuery{ManagerID: m.ID})
			if err != nil {
				return describeLeagueError(err)
			}

			l := response.(*leagueQueries.GetLeagueResponse).League
			fmt.Println("League")
			fmt.Println("======")
			fmt.Printf("  Name:     %s\n", l.Name)
			fmt.Printf("  Owner:    manager %d\n", l.OwnerID.Value())
			fmt.Printf("  Managers: %d\n", len(l.Members))
			if l.IsOwnedBy(m.ID) {
				fmt.Printf("  Secret:   %s\n", l.Secret)
			}

			return nil
		},
	}
}

// describeLeagueError turns membership errors into messages a manager can act on
func describeLeagueError(err error) error {
	var (
		already  *league.AlreadyInLeagueError
		notFound *shared.NotFoundError
	)

	switch {
	case errors.As(err, &already):
		return fmt.Errorf("you are already in league %s: leave it first with 'fantasy-manager league leave'", already.LeagueName)
	case errors.Is(err, league.ErrNotInLeague):
		return fmt.Errorf("you have not joined a league yet: join one with 'fantasy-manager league join <secret>'")
	case errors.As(err, &notFound) && notFound.Resource == shared.ResourceLeague:
		return fmt.Errorf("a league with secret %s is not found: create one with 'fantasy-manager league create <name>' or use another secret", notFound.Key)
	}
	return describeTransferError(err)
}
