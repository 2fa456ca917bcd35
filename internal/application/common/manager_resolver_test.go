package common_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
	"github.com/andrescamacho/fantasy-manager-go/test/helpers"
)

type scopedQuery struct {
	managerID shared.ManagerID
}

func (q *scopedQuery) ScopeManagerID() shared.ManagerID {
	return q.managerID
}

func TestManagerResolver_PrefersNumericID(t *testing.T) {
	repo := helpers.NewMockManagerRepository()
	first := repo.AddManager("tg-1", "First")
	repo.AddManager("tg-2", "Second")
	resolver := common.NewManagerResolver(repo)

	id := first.ID.Value()
	m, err := resolver.ResolveManager(context.Background(), &id, "tg-2")

	require.NoError(t, err)
	assert.Equal(t, first.ID, m.ID)
}

func TestManagerResolver_ByExternalID(t *testing.T) {
	repo := helpers.NewMockManagerRepository()
	second := repo.AddManager("tg-2", "Second")
	resolver := common.NewManagerResolver(repo)

	m, err := resolver.ResolveManager(context.Background(), nil, "tg-2")

	require.NoError(t, err)
	assert.Equal(t, second.ID, m.ID)
}

func TestManagerResolver_RequiresIdentifier(t *testing.T) {
	resolver := common.NewManagerResolver(helpers.NewMockManagerRepository())

	_, err := resolver.ResolveManager(context.Background(), nil, "")

	assert.Error(t, err)
}

func TestManagerMiddleware_InjectsManager(t *testing.T) {
	repo := helpers.NewMockManagerRepository()
	m := repo.AddManager("tg-1", "First")
	middleware := common.ManagerMiddleware(repo)

	resp, err := middleware(context.Background(), &scopedQuery{managerID: m.ID}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		resolved, ok := common.ManagerFromContext(ctx)
		require.True(t, ok)
		return resolved.ExternalID, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "tg-1", resp)
}

func TestManagerMiddleware_RejectsUnknownManager(t *testing.T) {
	middleware := common.ManagerMiddleware(helpers.NewMockManagerRepository())
	called := false

	_, err := middleware(context.Background(), &scopedQuery{managerID: shared.MustNewManagerID(5)}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		called = true
		return nil, nil
	})

	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.False(t, called)
}

func TestManagerMiddleware_RequiresManagerID(t *testing.T) {
	middleware := common.ManagerMiddleware(helpers.NewMockManagerRepository())

	_, err := middleware(context.Background(), &scopedQuery{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, nil
	})

	var validation *shared.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestManagerMiddleware_IgnoresUnscopedRequests(t *testing.T) {
	middleware := common.ManagerMiddleware(helpers.NewMockManagerRepository())

	resp, err := middleware(context.Background(), struct{}{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		_, ok := common.ManagerFromContext(ctx)
		assert.False(t, ok)
		return "passed", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "passed", resp)
}

type addRequest struct {
	DisplayName string `validate:"required,max=5"`
	TeamID      int    `validate:"min=1"`
}

func TestValidateRequest(t *testing.T) {
	require.NoError(t, common.ValidateRequest(&addRequest{DisplayName: "Pep", TeamID: 1}))

	err := common.ValidateRequest(&addRequest{TeamID: 1})
	var validation *shared.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "display_name", validation.Field)
	assert.Equal(t, "is required", validation.Message)

	err = common.ValidateRequest(&addRequest{DisplayName: "Guardiola", TeamID: 1})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "must be at most 5 characters", validation.Message)
}
