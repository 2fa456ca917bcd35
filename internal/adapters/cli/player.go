package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	playerCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/player/commands"
	playerQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/player/queries"
)

// NewPlayerCommand creates the player command with subcommands
func NewPlayerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage the player directory",
		Long: `Manage footballers known to the player directory.

Transfer requests name players as "Name, Position, Club"; only players
added here can be requested.

Examples:
  fantasy-manager player add --name Haaland --position Forward --club City
  fantasy-manager player add --name Rodri --position Midfielder --club City --team 4
  fantasy-manager player list --team 4`,
	}

	cmd.AddCommand(newPlayerAddCommand())
	cmd.AddCommand(newPlayerListCommand())

	return cmd
}

func newPlayerAddCommand() *cobra.Command {
	var (
		name     string
		position string
		club     string
		teamID   int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			command := &playerCommands.AddPlayerCommand{
				Name:     name,
				Position: position,
				Club:     club,
			}
			if cmd.Flags().Changed("team") {
				command.TeamID = &teamID
			}

			response, err := rt.mediator.Send(rt.Context(), command)
			if err != nil {
				return fmt.Errorf("failed to add player: %w", err)
			}

			p := response.(*playerCommands.AddPlayerResponse).Player
			fmt.Println("✓ Player added")
			fmt.Printf("  Player ID: %d\n", p.ID.Value())
			fmt.Printf("  Player:    %s\n", p.Label())
			fmt.Printf("  Team:      %s\n", displayTeam(p.TeamID))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&position, "position", "", "Playing position (required)")
	cmd.Flags().StringVar(&club, "club", "", "Real-world club (required)")
	cmd.Flags().IntVar(&teamID, "team", 0, "Fantasy team the player belongs to")

	return cmd
}

func newPlayerListCommand() *cobra.Command {
	var teamID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the roster of a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if teamID <= 0 {
				return fmt.Errorf("--team flag is required")
			}

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			response, err := rt.mediator.Send(rt.Context(), &playerQueries.ListTeamPlayersQuery{TeamID: teamID})
			if err != nil {
				return fmt.Errorf("failed to list players: %w", err)
			}

			players := response.(*playerQueries.ListTeamPlayersResponse).Players
			if len(players) == 0 {
				fmt.Printf("Team %d has no players\n", teamID)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPOSITION\tCLUB")
			fmt.Fprintln(w, "--\t----\t--------\t----")
			for _, p := range players {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID.Value(), p.Name, p.Position, p.Club)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&teamID, "team", 0, "Team ID (required)")

	return cmd
}
