package commands

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/metrics"
	appPlayer "github.com/andrescamacho/fantasy-manager-go/internal/application/player"
	appTransfer "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
	"github.com/andrescamacho/fantasy-manager-go/test/helpers"
)

type fixture struct {
	queue     *appTransfer.Queue
	directory *appPlayer.Directory
	transfers *helpers.MockTransferRepository
	manager   shared.ManagerID
}

func newFixture(limit int) *fixture {
	players := helpers.NewMockPlayerRepository()
	players.AddPlayer("Haaland", "Forward", "City")
	players.AddPlayer("Nunez", "Forward", "Liverpool")
	players.AddPlayer("Rodri", "Midfielder", "City")
	players.AddPlayer("Rice", "Midfielder", "Arsenal")

	transfers := helpers.NewMockTransferRepository()
	return &fixture{
		queue:     appTransfer.NewQueue(transfers, limit),
		directory: appPlayer.NewDirectory(players),
		transfers: transfers,
		manager:   shared.MustNewManagerID(1),
	}
}

func spec(name, position, club string) player.Spec {
	return player.Spec{Name: name, Position: position, Club: club}
}

func TestCreateTransferHandler_QueuesResolvedPlayers(t *testing.T) {
	f := newFixture(3)
	handler := NewCreateTransferHandler(f.queue, f.directory)

	resp, err := handler.Handle(context.Background(), &CreateTransferCommand{
		ManagerID: f.manager,
		Inbound:   spec("Haaland", "Forward", "City"),
		Outbound:  spec("Nunez", "Forward", "Liverpool"),
	})

	require.NoError(t, err)
	created := resp.(*CreateTransferResponse)
	assert.Equal(t, 0, created.Transfer.Priority)
	assert.Equal(t, 1, created.Transfer.Position())
	assert.Equal(t, "Haaland", created.Inbound.Name)
	assert.Equal(t, "Nunez", created.Outbound.Name)
	assert.Equal(t, created.Inbound.ID, created.Transfer.InboundPlayerID)
}

func TestCreateTransferHandler_UnknownPlayers(t *testing.T) {
	tests := []struct {
		name      string
		inbound   player.Spec
		outbound  player.Spec
		direction string
	}{
		{
			name:      "inbound",
			inbound:   spec("Mbappe", "Forward", "Madrid"),
			outbound:  spec("Nunez", "Forward", "Liverpool"),
			direction: appPlayer.DirectionInbound,
		},
		{
			name:      "outbound",
			inbound:   spec("Haaland", "Forward", "City"),
			outbound:  spec("Nunez", "Forward", "Barcelona"),
			direction: appPlayer.DirectionOutbound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(3)
			handler := NewCreateTransferHandler(f.queue, f.directory)

			_, err := handler.Handle(context.Background(), &CreateTransferCommand{
				ManagerID: f.manager,
				Inbound:   tt.inbound,
				Outbound:  tt.outbound,
			})

			var unknown *shared.UnknownPlayerError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, tt.direction, unknown.Direction)
			assert.Equal(t, 0, f.transfers.AppendCalls())
		})
	}
}

func TestCreateTransferHandler_FullQueueFailsBeforeResolving(t *testing.T) {
	f := newFixture(1)
	handler := NewCreateTransferHandler(f.queue, f.directory)

	_, err := handler.Handle(context.Background(), &CreateTransferCommand{
		ManagerID: f.manager,
		Inbound:   spec("Haaland", "Forward", "City"),
		Outbound:  spec("Nunez", "Forward", "Liverpool"),
	})
	require.NoError(t, err)

	// unknown players would fail resolution, but capacity is reported first
	_, err = handler.Handle(context.Background(), &CreateTransferCommand{
		ManagerID: f.manager,
		Inbound:   spec("Nobody", "Forward", "Nowhere"),
		Outbound:  spec("Nobody", "Back", "Nowhere"),
	})

	assert.ErrorIs(t, err, transfer.ErrCapacityExceeded)
	assert.Equal(t, 1, f.transfers.AppendCalls())
}

// rejectionRecorder captures rejected transfer reasons in place of the Prometheus collector
type rejectionRecorder struct {
	mu      sync.Mutex
	reasons []string
}

func (r *rejectionRecorder) RecordTransferCreated(managerID int, depth int) {}
func (r *rejectionRecorder) RecordTransferAborted(managerID int, depth int) {}
func (r *rejectionRecorder) SetQueueDepth(managerID int, depth int)         {}

func (r *rejectionRecorder) RecordTransferRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
}

func TestCreateTransferHandler_FullQueueRecordsCapacityRejection(t *testing.T) {
	recorder := &rejectionRecorder{}
	metrics.SetGlobalTransferCollector(recorder)
	t.Cleanup(func() { metrics.SetGlobalTransferCollector(nil) })

	f := newFixture(1)
	handler := NewCreateTransferHandler(f.queue, f.directory)
	cmd := &CreateTransferCommand{
		ManagerID: f.manager,
		Inbound:   spec("Haaland", "Forward", "City"),
		Outbound:  spec("Nunez", "Forward", "Liverpool"),
	}

	_, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), cmd)
	require.ErrorIs(t, err, transfer.ErrCapacityExceeded)

	assert.Equal(t, []string{metrics.RejectReasonCapacity}, recorder.reasons)
	assert.Equal(t, 1, f.transfers.AppendCalls())
}

func TestCreateTransferHandler_InvalidRequestType(t *testing.T) {
	f := newFixture(3)
	handler := NewCreateTransferHandler(f.queue, f.directory)

	_, err := handler.Handle(context.Background(), &AbortTransferCommand{})

	assert.Error(t, err)
}

func TestAbortTransferHandler_UsesOneBasedPosition(t *testing.T) {
	f := newFixture(3)
	create := NewCreateTransferHandler(f.queue, f.directory)
	abort := NewAbortTransferHandler(f.queue)

	for _, pair := range [][2]player.Spec{
		{spec("Haaland", "Forward", "City"), spec("Nunez", "Forward", "Liverpool")},
		{spec("Rodri", "Midfielder", "City"), spec("Rice", "Midfielder", "Arsenal")},
	} {
		_, err := create.Handle(context.Background(), &CreateTransferCommand{ManagerID: f.manager, Inbound: pair[0], Outbound: pair[1]})
		require.NoError(t, err)
	}

	resp, err := abort.Handle(context.Background(), &AbortTransferCommand{ManagerID: f.manager, Position: 1})

	require.NoError(t, err)
	aborted := resp.(*AbortTransferResponse)
	assert.Equal(t, 1, aborted.Position)
	assert.Equal(t, 1, aborted.Remaining)

	list, err := f.queue.ListByManager(context.Background(), f.manager)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 0, list[0].Priority)
}

// unreliableCountRepo serves the first Count and fails every later one
type unreliableCountRepo struct {
	*helpers.MockTransferRepository
	countCalls int
}

func (r *unreliableCountRepo) Count(ctx context.Context, filter transfer.Filter) (int, error) {
	r.countCalls++
	if r.countCalls > 1 {
		return 0, errors.New("timeout")
	}
	return r.MockTransferRepository.Count(ctx, filter)
}

func TestAbortTransferHandler_CommittedAbortIgnoresLaterReadFailures(t *testing.T) {
	manager := shared.MustNewManagerID(1)
	mock := helpers.NewMockTransferRepository()
	for i, id := range []string{"a", "b", "c"} {
		mock.Seed(&transfer.TransferRequest{
			ID:               id,
			ManagerID:        manager,
			InboundPlayerID:  shared.MustNewPlayerID(i*2 + 1),
			OutboundPlayerID: shared.MustNewPlayerID(i*2 + 2),
			Priority:         i,
		})
	}
	repo := &unreliableCountRepo{MockTransferRepository: mock}
	abort := NewAbortTransferHandler(appTransfer.NewQueue(repo, 3))

	resp, err := abort.Handle(context.Background(), &AbortTransferCommand{ManagerID: manager, Position: 1})

	require.NoError(t, err)
	aborted := resp.(*AbortTransferResponse)
	assert.Equal(t, 1, aborted.Position)
	assert.Equal(t, 2, aborted.Remaining)
	assert.Equal(t, 1, mock.ShiftCalls())

	left, err := mock.List(context.Background(), transfer.ForManager(manager))
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.Equal(t, "b", left[0].ID)
	assert.Equal(t, 0, left[0].Priority)
}

func TestAbortTransferHandler_PositionZeroIsInvalid(t *testing.T) {
	f := newFixture(3)
	abort := NewAbortTransferHandler(f.queue)

	_, err := abort.Handle(context.Background(), &AbortTransferCommand{ManagerID: f.manager, Position: 0})

	var invalid *transfer.InvalidPriorityError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, -1, invalid.Priority)
}

func TestCommands_AreManagerScoped(t *testing.T) {
	managerID := shared.MustNewManagerID(9)

	assert.Equal(t, managerID, (&CreateTransferCommand{ManagerID: managerID}).ScopeManagerID())
	assert.Equal(t, managerID, (&AbortTransferCommand{ManagerID: managerID}).ScopeManagerID())
}
