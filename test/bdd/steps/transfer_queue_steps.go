package steps

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/cucumber/godog"

	managerCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/manager/commands"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/setup"
	transferCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer/commands"
	transferQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer/queries"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
	"github.com/andrescamacho/fantasy-manager-go/test/helpers"
)

// transferQueueContext holds state for transfer queue scenarios.
// Everything goes through a configured mediator backed by the shared test database.
type transferQueueContext struct {
	repos    *helpers.TestRepositories
	mediator mediator.Mediator
	managers map[string]shared.ManagerID

	created  *transfer.TransferRequest
	lastErr  error
	listings [][]string
}

func (c *transferQueueContext) reset() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	c.repos = helpers.NewTestRepositories(helpers.SharedTestDB, nil)
	c.mediator = nil
	c.managers = make(map[string]shared.ManagerID)
	c.created = nil
	c.lastErr = nil
	c.listings = nil
	return nil
}

// Given steps

func (c *transferQueueContext) aTransferQueueWithATransfersCountOf(limit int) error {
	registry := setup.NewHandlerRegistry(c.repos.ManagerRepo, c.repos.PlayerRepo, c.repos.TransferRepo, c.repos.LeagueRepo, c.repos.TeamRepo, limit)
	m, err := registry.CreateConfiguredMediator()
	if err != nil {
		return fmt.Errorf("failed to configure mediator: %w", err)
	}
	c.mediator = m
	return nil
}

func (c *transferQueueContext) aManagerIsRegistered(ctx context.Context, externalID string) error {
	resp, err := c.mediator.Send(ctx, &managerCommands.RegisterManagerCommand{ExternalID: externalID, Name: externalID})
	if err != nil {
		return fmt.Errorf("failed to register manager %s: %w", externalID, err)
	}
	c.managers[externalID] = resp.(*managerCommands.RegisterManagerResponse).Manager.ID
	return nil
}

func (c *transferQueueContext) theFollowingPlayersExist(ctx context.Context, table *godog.Table) error {
	labels := make([]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] { // Skip header
		labels = append(labels, fmt.Sprintf("%s, %s, %s", row.Cells[0].Value, row.Cells[1].Value, row.Cells[2].Value))
	}
	_, err := c.repos.SeedPlayers(ctx, labels...)
	return err
}

func (c *transferQueueContext) managerHasRequested(ctx context.Context, externalID string, table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		if err := c.managerRequestsInExchangeFor(ctx, externalID, row.Cells[0].Value, row.Cells[1].Value); err != nil {
			return err
		}
		if c.lastErr != nil {
			return fmt.Errorf("setup request %s -> %s failed: %w", row.Cells[0].Value, row.Cells[1].Value, c.lastErr)
		}
	}
	return nil
}

// When steps

func (c *transferQueueContext) managerRequestsInExchangeFor(ctx context.Context, externalID, inbound, outbound string) error {
	managerID, err := c.managerID(externalID)
	if err != nil {
		return err
	}
	in, err := player.ParseSpec(inbound)
	if err != nil {
		return err
	}
	out, err := player.ParseSpec(outbound)
	if err != nil {
		return err
	}

	c.created = nil
	resp, err := c.mediator.Send(ctx, &transferCommands.CreateTransferCommand{
		ManagerID: managerID,
		Inbound:   in,
		Outbound:  out,
	})
	c.lastErr = err
	if err == nil {
		c.created = resp.(*transferCommands.CreateTransferResponse).Transfer
	}
	return nil
}

func (c *transferQueueContext) managerAbortsTheTransferAtPriority(ctx context.Context, externalID string, priority int) error {
	managerID, err := c.managerID(externalID)
	if err != nil {
		return err
	}
	_, c.lastErr = c.mediator.Send(ctx, &transferCommands.AbortTransferCommand{
		ManagerID: managerID,
		Position:  priority + 1,
	})
	return nil
}

func (c *transferQueueContext) managerListsTheTransfersTwice(ctx context.Context, externalID string) error {
	for i := 0; i < 2; i++ {
		views, err := c.list(ctx, externalID)
		if err != nil {
			return err
		}
		c.listings = append(c.listings, renderViews(views))
	}
	return nil
}

// Then steps

func (c *transferQueueContext) theRequestShouldBeCreatedAtPriority(priority int) error {
	if c.lastErr != nil {
		return fmt.Errorf("expected request to succeed, got: %w", c.lastErr)
	}
	if c.created == nil {
		return fmt.Errorf("no request was created")
	}
	if c.created.Priority != priority {
		return fmt.Errorf("expected priority %d, got %d", priority, c.created.Priority)
	}
	return nil
}

func (c *transferQueueContext) theOperationShouldFailWith(kind string) error {
	if c.lastErr == nil {
		return fmt.Errorf("expected %s error, got success", kind)
	}
	switch kind {
	case "capacity exceeded":
		if errors.Is(c.lastErr, transfer.ErrCapacityExceeded) {
			return nil
		}
	case "invalid priority":
		if errors.Is(c.lastErr, transfer.ErrInvalidPriority) {
			return nil
		}
	case "unknown player":
		var unknown *shared.UnknownPlayerError
		if errors.As(c.lastErr, &unknown) {
			return nil
		}
	default:
		return fmt.Errorf("unsupported error kind %q", kind)
	}
	return fmt.Errorf("expected %s error, got: %v", kind, c.lastErr)
}

func (c *transferQueueContext) theAbortShouldSucceed() error {
	if c.lastErr != nil {
		return fmt.Errorf("expected abort to succeed, got: %w", c.lastErr)
	}
	return nil
}

func (c *transferQueueContext) managerShouldHavePendingTransfers(ctx context.Context, externalID string, expected int) error {
	managerID, err := c.managerID(externalID)
	if err != nil {
		return err
	}
	resp, err := c.mediator.Send(ctx, &transferQueries.CountTransfersQuery{ManagerID: managerID})
	if err != nil {
		return err
	}
	if count := resp.(*transferQueries.CountTransfersResponse).Count; count != expected {
		return fmt.Errorf("expected %d pending transfers, got %d", expected, count)
	}
	return nil
}

func (c *transferQueueContext) theQueueOfManagerShouldBe(ctx context.Context, externalID string, table *godog.Table) error {
	views, err := c.list(ctx, externalID)
	if err != nil {
		return err
	}
	if len(views) != len(table.Rows)-1 {
		return fmt.Errorf("expected %d transfers, got %d", len(table.Rows)-1, len(views))
	}

	for i, row := range table.Rows[1:] {
		priority, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return err
		}
		view := views[i]
		if view.Transfer.Priority != priority {
			return fmt.Errorf("row %d: expected priority %d, got %d", i, priority, view.Transfer.Priority)
		}
		if label := playerLabel(view.Inbound); label != row.Cells[1].Value {
			return fmt.Errorf("row %d: expected inbound %q, got %q", i, row.Cells[1].Value, label)
		}
		if label := playerLabel(view.Outbound); label != row.Cells[2].Value {
			return fmt.Errorf("row %d: expected outbound %q, got %q", i, row.Cells[2].Value, label)
		}
	}
	return nil
}

func (c *transferQueueContext) thePrioritiesOfManagerShouldBeContiguous(ctx context.Context, externalID string) error {
	views, err := c.list(ctx, externalID)
	if err != nil {
		return err
	}
	for i, view := range views {
		if view.Transfer.Priority != i {
			return fmt.Errorf("expected priority %d at index %d, got %d", i, i, view.Transfer.Priority)
		}
	}
	return nil
}

func (c *transferQueueContext) bothListingsShouldBeIdentical() error {
	if len(c.listings) != 2 {
		return fmt.Errorf("expected 2 listings, got %d", len(c.listings))
	}
	if !reflect.DeepEqual(c.listings[0], c.listings[1]) {
		return fmt.Errorf("listings differ: %v vs %v", c.listings[0], c.listings[1])
	}
	return nil
}

// Helpers

func (c *transferQueueContext) managerID(externalID string) (shared.ManagerID, error) {
	id, ok := c.managers[externalID]
	if !ok {
		return shared.ManagerID{}, fmt.Errorf("manager %s is not registered", externalID)
	}
	return id, nil
}

func (c *transferQueueContext) list(ctx context.Context, externalID string) ([]transferQueries.TransferView, error) {
	managerID, err := c.managerID(externalID)
	if err != nil {
		return nil, err
	}
	resp, err := c.mediator.Send(ctx, &transferQueries.ListTransfersQuery{ManagerID: managerID})
	if err != nil {
		return nil, err
	}
	return resp.(*transferQueries.ListTransfersResponse).Transfers, nil
}

func playerLabel(p *player.Player) string {
	if p == nil {
		return "<missing>"
	}
	return p.Label()
}

func renderViews(views []transferQueries.TransferView) []string {
	rendered := make([]string, 0, len(views))
	for _, v := range views {
		rendered = append(rendered, fmt.Sprintf("%s|%d|%s|%s", v.Transfer.ID, v.Transfer.Priority, playerLabel(v.Inbound), playerLabel(v.Outbound)))
	}
	return rendered
}

// InitializeTransferQueueScenario registers the transfer queue step definitions
func InitializeTransferQueueScenario(sc *godog.ScenarioContext) {
	c := &transferQueueContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		return ctx, c.reset()
	})

	// Given steps
	sc.Step(`^a transfer queue with a transfers count of (\d+)$`, c.aTransferQueueWithATransfersCountOf)
	sc.Step(`^a manager "([^"]*)" is registered$`, c.aManagerIsRegistered)
	sc.Step(`^the following players exist:$`, c.theFollowingPlayersExist)
	sc.Step(`^manager "([^"]*)" has requested:$`, c.managerHasRequested)

	// When steps
	sc.Step(`^manager "([^"]*)" requests "([^"]*)" in exchange for "([^"]*)"$`, c.managerRequestsInExchangeFor)
	sc.Step(`^manager "([^"]*)" aborts the transfer at priority (-?\d+)$`, c.managerAbortsTheTransferAtPriority)
	sc.Step(`^manager "([^"]*)" lists the transfers twice$`, c.managerListsTheTransfersTwice)

	// Then steps
	sc.Step(`^the request should be created at priority (\d+)$`, c.theRequestShouldBeCreatedAtPriority)
	sc.Step(`^the request should fail with "([^"]*)"$`, c.theOperationShouldFailWith)
	sc.Step(`^the abort should fail with "([^"]*)"$`, c.theOperationShouldFailWith)
	sc.Step(`^the abort should succeed$`, c.theAbortShouldSucceed)
	sc.Step(`^manager "([^"]*)" should have (\d+) pending transfers$`, c.managerShouldHavePendingTransfers)
	sc.Step(`^the queue of manager "([^"]*)" should be:$`, c.theQueueOfManagerShouldBe)
	sc.Step(`^the priorities of manager "([^"]*)" should be contiguous$`, c.thePrioritiesOfManagerShouldBeContiguous)
	sc.Step(`^both listings should be identical$`, c.bothListingsShouldBeIdentical)
}
