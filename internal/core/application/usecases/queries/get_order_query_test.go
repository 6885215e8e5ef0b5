package queries_test

import (
	"testing"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, role user.Role) services.Actor {
	t.Helper()
	actor, err := services.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestNewGetOrderQuery_Valid(t *testing.T) {
	actor := mustActor(t, user.Client)
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(actor, orderID)
	require.NoError(t, err)

	require.NoError(t, query.Validate())
	assert.Equal(t, actor, query.Actor())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderQuery_AnonymousActor(t *testing.T) {
	_, err := queries.NewGetOrderQuery(services.Actor{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrActorIsRequired)
}

func TestNewGetOrderQuery_EmptyOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(mustActor(t, user.Client), kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
