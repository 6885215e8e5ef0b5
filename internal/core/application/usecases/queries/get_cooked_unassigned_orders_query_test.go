package queries_test

import (
	"testing"

	"eats/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCookedUnassignedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetCookedUnassignedOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetCookedUnassignedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCookedUnassignedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCookedUnassignedOrdersQueryIsNotConstructed)
}
