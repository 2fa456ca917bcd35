package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/throttle"
	transferCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer/commands"
	transferQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer/queries"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

// NewTransferCommand creates the transfer command with subcommands
func NewTransferCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Manage pending transfer requests",
		Long: `Manage the queue of pending transfer requests of a manager.

Players are written as "Name, Position, Club". Requests are numbered from 1
in the order they will be processed.

Examples:
  fantasy-manager transfer create "Haaland, Forward, City" "Nunez, Forward, Liverpool"
  fantasy-manager transfer list
  fantasy-manager transfer abort 1
  fantasy-manager transfer count --user 123456`,
	}

	cmd.AddCommand(newTransferCreateCommand())
	cmd.AddCommand(newTransferAbortCommand())
	cmd.AddCommand(newTransferListCommand())
	cmd.AddCommand(newTransferCountCommand())

	return cmd
}

func newTransferCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <inbound player> <outbound player>",
		Short: "Request to bring a player in for one of yours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inbound, err := player.ParseSpec(args[0])
			if err != nil {
				return fmt.Errorf("inbound player: %w", err)
			}
			outbound, err := player.ParseSpec(args[1])
			if err != nil {
				return fmt.Errorf("outbound player: %w", err)
			}

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

			response, err := rt.mediator.Send(ctx, &transferCommands.CreateTransferCommand{
				ManagerID: m.ID,
				Inbound:   inbound,
				Outbound:  outbound,
			})
			if err != nil {
				return describeTransferError(err)
			}

			result := response.(*transferCommands.CreateTransferResponse)
			fmt.Println("✓ Transfer request created")
			fmt.Printf("  #%d  %s  <-  %s\n", result.Transfer.Position(), result.Inbound.Label(), result.Outbound.Label())

			return nil
		},
	}
}

func newTransferAbortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "abort <number>",
		Short: "Abort a pending transfer request by its number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

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

			response, err := rt.mediator.Send(ctx, &transferCommands.AbortTransferCommand{
				ManagerID: m.ID,
				Position:  position,
			})
			if err != nil {
				return describeTransferError(err)
			}

			result := response.(*transferCommands.AbortTransferResponse)
			fmt.Printf("✓ Transfer #%d aborted, %d pending\n", result.Position, result.Remaining)

			return nil
		},
	}
}

func newTransferListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending transfer requests in processing order",
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

			response, err := rt.mediator.Send(ctx, &transferQueries.ListTransfersQuery{ManagerID: m.ID})
			if err != nil {
				return describeTransferError(err)
			}

			views := response.(*transferQueries.ListTransfersResponse).Transfers
			if len(views) == 0 {
				fmt.Println("You have no transfers")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tIN\tOUT\tREQUESTED")
			fmt.Fprintln(w, "-\t--\t---\t---------")
			for _, v := range views {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					v.Transfer.Position(), viewLabel(v.Inbound), viewLabel(v.Outbound),
					v.Transfer.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func newTransferCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show how many transfer requests are pending",
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

			response, err := rt.mediator.Send(ctx, &transferQueries.CountTransfersQuery{ManagerID: m.ID})
			if err != nil {
				return describeTransferError(err)
			}

			result := response.(*transferQueries.CountTransfersResponse)
			fmt.Printf("Pending transfers: %d/%d (%d remaining)\n", result.Count, result.Limit, result.Remaining)

			return nil
		},
	}
}

// describeTransferError turns queue errors into messages a manager can act on.
// Unrecognized errors are returned unchanged.
func describeTransferError(err error) error {
	var (
		capacity *transfer.CapacityExceededError
		priority *transfer.InvalidPriorityError
		unknown  *shared.UnknownPlayerError
	)

	switch {
	case errors.As(err, &capacity):
		return fmt.Errorf("transfers count is exceeded: you already have %d pending transfers, abort one first", capacity.Limit)
	case errors.As(err, &priority):
		if priority.Count == 0 {
			return fmt.Errorf("you have no transfers")
		}
		return fmt.Errorf("transfer number must be between 1 and %d", priority.Count)
	case errors.As(err, &unknown):
		return fmt.Errorf("%s", unknown.Message)
	case errors.Is(err, transfer.ErrStoreUnavailable), errors.Is(err, transfer.ErrReprioritizeFailed):
		return fmt.Errorf("transfer queue is temporarily unavailable, try again: %w", err)
	case errors.Is(err, throttle.ErrRateLimited):
		return fmt.Errorf("too many requests, wait a moment and try again")
	}
	return err
}

func viewLabel(p *player.Player) string {
	if p == nil {
		return "(removed player)"
	}
	return p.Label()
}
