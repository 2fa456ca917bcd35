package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	managerCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/manager/commands"
	managerQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/manager/queries"
)

// NewManagerCommand creates the manager command with subcommands
func NewManagerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manager",
		Short: "Manage registered managers",
		Long: `Manage fantasy managers in the local database.

A manager is identified by the chat user id that registered them.

Examples:
  fantasy-manager manager register --user 123456 --name "Jose"
  fantasy-manager manager list
  fantasy-manager manager info --user 123456`,
	}

	cmd.AddCommand(newManagerRegisterCommand())
	cmd.AddCommand(newManagerListCommand())
	cmd.AddCommand(newManagerInfoCommand())

	return cmd
}

func newManagerRegisterCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a manager for a chat user",
		Long: `Register a manager for the chat user given with --user.

Registering an already known user is not an error; the existing manager is shown.

Example:
  fantasy-manager manager register --user 123456 --name "Jose"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if externalID == "" {
				return fmt.Errorf("--user flag is required")
			}

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			response, err := rt.mediator.Send(rt.Context(), &managerCommands.RegisterManagerCommand{
				ExternalID: externalID,
				Name:       name,
			})
			if err != nil {
				return fmt.Errorf("failed to register manager: %w", err)
			}

			result := response.(*managerCommands.RegisterManagerResponse)
			if result.Created {
				fmt.Println("✓ Manager registered successfully")
			} else {
				fmt.Println("Manager already registered")
			}
			fmt.Printf("  Manager ID: %d\n", result.Manager.ID.Value())
			fmt.Printf("  User:       %s\n", result.Manager.ExternalID)
			if result.Manager.Name != "" {
				fmt.Printf("  Name:       %s\n", result.Manager.Name)
			}
			fmt.Println("\nSet as default manager with: fantasy-manager config set-manager --user", externalID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name of the manager")

	return cmd
}

func newManagerListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered managers",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			response, err := rt.mediator.Send(rt.Context(), &managerQueries.ListManagersQuery{})
			if err != nil {
				return fmt.Errorf("failed to list managers: %w", err)
			}

			managers := response.(*managerQueries.ListManagersResponse).Managers
			if len(managers) == 0 {
				fmt.Println("No managers registered")
				fmt.Println("\nRegister one with: fantasy-manager manager register --user <chat-user-id>")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSER\tNAME\tREGISTERED")
			fmt.Fprintln(w, "--\t----\t----\t----------")
			for _, m := range managers {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					m.ID.Value(), m.ExternalID, m.Name, m.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
}

func newManagerInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show details of a manager",
		Long: `Show details of the manager selected with --manager-id, --user or the default.

Example:
  fantasy-manager manager info --user 123456`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := rt.Context()
			selected, err := rt.selectManager(ctx)
			if err != nil {
				return err
			}

			id := selected.ID.Value()
			response, err := rt.mediator.Send(ctx, &managerQueries.GetManagerQuery{ManagerID: &id})
			if err != nil {
				return fmt.Errorf("failed to get manager: %w", err)
			}

			m := response.(*managerQueries.GetManagerResponse).Manager
			fmt.Println("Manager")
			fmt.Println("=======")
			fmt.Printf("  Manager ID: %d\n", m.ID.Value())
			fmt.Printf("  User:       %s\n", m.ExternalID)
			fmt.Printf("  Name:       %s\n", m.Name)
			fmt.Printf("  Registered: %s\n", m.CreatedAt.Format(time.RFC3339))

			return nil
		},
	}
}
