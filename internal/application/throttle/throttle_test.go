package throttle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

type scopedRequest struct {
	managerID shared.ManagerID
}

func (r *scopedRequest) ScopeManagerID() shared.ManagerID {
	return r.managerID
}

type globalRequest struct{}

func okHandler(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return "ok", nil
}

func TestMiddleware_RejectsAfterBurst(t *testing.T) {
	// A near-zero rate means no token is refilled during the test
	middleware := Middleware(NewManagerLimiter(0.001, 2))
	request := &scopedRequest{managerID: shared.MustNewManagerID(1)}

	for i := 0; i < 2; i++ {
		resp, err := middleware(context.Background(), request, okHandler)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	}

	_, err := middleware(context.Background(), request, okHandler)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestMiddleware_ManagersHaveIndependentBuckets(t *testing.T) {
	middleware := Middleware(NewManagerLimiter(0.001, 1))

	_, err := middleware(context.Background(), &scopedRequest{managerID: shared.MustNewManagerID(1)}, okHandler)
	require.NoError(t, err)

	_, err = middleware(context.Background(), &scopedRequest{managerID: shared.MustNewManagerID(2)}, okHandler)
	assert.NoError(t, err)

	_, err = middleware(context.Background(), &scopedRequest{managerID: shared.MustNewManagerID(1)}, okHandler)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestMiddleware_UnscopedRequestsPassThrough(t *testing.T) {
	middleware := Middleware(NewManagerLimiter(0.001, 1))

	for i := 0; i < 5; i++ {
		_, err := middleware(context.Background(), &globalRequest{}, okHandler)
		require.NoError(t, err)
	}
}

func TestMiddleware_NilLimiterDisablesThrottling(t *testing.T) {
	middleware := Middleware(nil)
	request := &scopedRequest{managerID: shared.MustNewManagerID(1)}

	for i := 0; i < 5; i++ {
		_, err := middleware(context.Background(), request, okHandler)
		require.NoError(t, err)
	}
}
