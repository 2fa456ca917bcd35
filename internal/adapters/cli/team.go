package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	teamCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/team/commands"
	teamQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/team/queries"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
)

// NewTeamCommand creates the team command with subcommands
func NewTeamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Create and inspect your team",
		Long: `Every manager owns at most one team. Players are put on a roster with
'fantasy-manager player add --team <id>'.

Examples:
  fantasy-manager team create Gunners
  fantasy-manager team info`,
	}

	cmd.AddCommand(newTeamCreateCommand())
	cmd.AddCommand(newTeamInfoCommand())

	return cmd
}

func newTeamCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create your team",
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

			response, err := rt.mediator.Send(ctx, &teamCommands.CreateTeamCommand{
				ManagerID: m.ID,
				Name:      strings.Join(args, " "),
			})
			if err != nil {
				return describeTeamError(err)
			}

			t := response.(*teamCommands.CreateTeamResponse).Team
			fmt.Printf("✓ You have created team %s\n", t.Name)
			fmt.Printf("  Team ID: %d\n", t.ID)

			return nil
		},
	}
}

func newTeamInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show your team and its roster",
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

			response, err := rt.mediator.Send(ctx, &teamQueries.GetTeamQuery{ManagerID: m.ID})
			if err != nil {
				return describeTeamError(err)
			}

			result := response.(*teamQueries.GetTeamResponse)
			fmt.Printf("Team %s (ID %d)\n", result.Team.Name, result.Team.ID)
			if len(result.Roster) == 0 {
				fmt.Println("No players on the roster yet")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPOSITION\tCLUB")
			for _, p := range result.Roster {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Position, p.Club)
			}
			return w.Flush()
		},
	}
}

func describeTeamError(err error) error {
	var (
		exists   *team.AlreadyHasTeamError
		notFound *shared.NotFoundError
	)

	switch {
	case errors.As(err, &exists):
		return fmt.Errorf("you already have team %s", exists.TeamName)
	case errors.As(err, &notFound) && notFound.Resource == shared.ResourceTeam:
		return fmt.Errorf("you have not created a team yet: use 'fantasy-manager team create <name>'")
	}
	return describeTransferError(err)
}
