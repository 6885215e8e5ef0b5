package queries_test

import (
	"testing"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	actor := mustActor(t, user.Delivery)

	query, err := queries.NewGetOrdersQuery(actor, nil)
	require.NoError(t, err)

	require.NoError(t, query.Validate())
	assert.Equal(t, actor, query.Actor())
	assert.Nil(t, query.Status())
}

func TestNewGetOrdersQuery_WithStatusFilter(t *testing.T) {
	status := order.Cooked

	query, err := queries.NewGetOrdersQuery(mustActor(t, user.Owner), &status)
	require.NoError(t, err)

	require.NotNil(t, query.Status())
	assert.Equal(t, order.Cooked, *query.Status())

	// The filter is copied, so mutating the caller's value must not leak in.
	status = order.Delivered
	assert.Equal(t, order.Cooked, *query.Status())
}

func TestNewGetOrdersQuery_InvalidStatus(t *testing.T) {
	status := order.Status(99)

	_, err := queries.NewGetOrdersQuery(mustActor(t, user.Owner), &status)
	require.Error(t, err)
}

func TestNewGetOrdersQuery_AnonymousActor(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(services.Actor{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrActorIsRequired)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
