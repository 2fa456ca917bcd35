package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

type sampleQuery struct{}

func withRegistry(t *testing.T) {
	t.Helper()
	InitRegistry()
	t.Cleanup(func() {
		Registry = nil
		SetGlobalTransferCollector(nil)
	})
}

func TestTransferMetricsCollector_RecordsQueueEvents(t *testing.T) {
	withRegistry(t)

	collector := NewTransferMetricsCollector()
	require.NoError(t, collector.Register())
	SetGlobalTransferCollector(collector)

	RecordTransferCreated(7, 1)
	RecordTransferCreated(7, 2)
	RecordTransferAborted(7, 1)
	RecordTransferRejected(RejectReasonCapacity)
	RecordTransferRejected(RejectReasonCapacity)
	RecordTransferRejected(RejectReasonPriority)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.transfersCreated.WithLabelValues("7")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.transfersAborted.WithLabelValues("7")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.queueDepth.WithLabelValues("7")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.transfersRejected.WithLabelValues(RejectReasonCapacity)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.transfersRejected.WithLabelValues(RejectReasonPriority)))
}

func TestRecordFunctions_NoCollectorIsNoOp(t *testing.T) {
	SetGlobalTransferCollector(nil)

	assert.NotPanics(t, func() {
		RecordTransferCreated(1, 1)
		RecordTransferAborted(1, 0)
		RecordTransferRejected(RejectReasonPriority)
	})
}

func TestRegister_DisabledRegistry(t *testing.T) {
	Registry = nil

	assert.NoError(t, NewTransferMetricsCollector().Register())
	assert.NoError(t, NewCommandMetricsCollector().Register())
	assert.False(t, IsEnabled())
}

func TestPrometheusMiddleware_RecordsStatus(t *testing.T) {
	withRegistry(t)

	collector := NewCommandMetricsCollector()
	require.NoError(t, collector.Register())
	middleware := PrometheusMiddleware(collector)

	ok := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return "done", nil
	}
	failing := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, errors.New("boom")
	}
	rejected := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, transfer.NewInvalidPriorityError(3, 1)
	}

	resp, err := middleware(context.Background(), &sampleQuery{}, ok)
	require.NoError(t, err)
	assert.Equal(t, "done", resp)

	_, err = middleware(context.Background(), &sampleQuery{}, failing)
	require.Error(t, err)

	_, err = middleware(context.Background(), &sampleQuery{}, rejected)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues("sampleQuery", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues("sampleQuery", StatusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues("sampleQuery", StatusRejected)))
}

func TestRequestStatus(t *testing.T) {
	managerID := shared.MustNewManagerID(2)

	assert.Equal(t, StatusSuccess, requestStatus(nil))
	assert.Equal(t, StatusRejected, requestStatus(transfer.NewCapacityExceededError(managerID, 3)))
	assert.Equal(t, StatusRejected, requestStatus(fmt.Errorf("abort: %w", transfer.NewInvalidPriorityError(5, 1))))
	assert.Equal(t, StatusRejected, requestStatus(shared.NewValidationError("name", "is required")))
	assert.Equal(t, StatusRejected, requestStatus(shared.NewNotFoundError(shared.ResourceManager, "9")))
	assert.Equal(t, StatusRejected, requestStatus(shared.NewUnknownPlayerError("inbound", "Kane", "Forward", "Spurs")))
	assert.Equal(t, StatusRejected, requestStatus(league.NewAlreadyInLeagueError(managerID, "Sunday League")))
	assert.Equal(t, StatusRejected, requestStatus(league.NewNotInLeagueError(managerID)))
	assert.Equal(t, StatusRejected, requestStatus(team.NewAlreadyHasTeamError(managerID, "Gunners")))
	assert.Equal(t, StatusError, requestStatus(transfer.NewStoreUnavailableError("count", errors.New("timeout"))))
	assert.Equal(t, StatusError, requestStatus(errors.New("boom")))
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	middleware := PrometheusMiddleware(nil)

	resp, err := middleware(context.Background(), &sampleQuery{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}

func TestExtractCommandName(t *testing.T) {
	assert.Equal(t, "sampleQuery", extractCommandName(&sampleQuery{}))
	assert.Equal(t, "sampleQuery", extractCommandName(sampleQuery{}))
	assert.Equal(t, "UnknownCommand", extractCommandName(nil))
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	withRegistry(t)

	collector := NewTransferMetricsCollector()
	require.NoError(t, collector.Register())
	collector.RecordTransferRejected(RejectReasonCapacity)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `fantasy_manager_transfers_rejected_total{reason="capacity"} 1`))
}

func TestHandler_DisabledReturnsNotFound(t *testing.T) {
	Registry = nil

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSampleQueueDepths_SetsGaugeUntilCanceled(t *testing.T) {
	withRegistry(t)

	collector := NewTransferMetricsCollector()
	require.NoError(t, collector.Register())
	SetGlobalTransferCollector(collector)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan struct{})

	go func() {
		defer close(done)
		SampleQueueDepths(ctx, time.Millisecond, func(ctx context.Context) (map[int]int, error) {
			calls++
			if calls == 2 {
				return nil, errors.New("database is gone")
			}
			if calls >= 3 {
				cancel()
			}
			return map[int]int{3: calls}, nil
		}, func(err error) {
			assert.EqualError(t, err, "database is gone")
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sampler did not stop after cancel")
	}

	assert.GreaterOrEqual(t, calls, 3)
	assert.GreaterOrEqual(t, testutil.ToFloat64(collector.queueDepth.WithLabelValues("3")), 3.0)
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.transfersCreated.WithLabelValues("3")))
}
