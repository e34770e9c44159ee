package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		expected error
	}{
		{"list clients", queries.ListClientsQuery{}.Validate, queries.ErrListClientsQueryIsNotConstructed},
		{"list orders", queries.ListOrdersQuery{}.Validate, queries.ErrListOrdersQueryIsNotConstructed},
		{"get order", queries.GetOrderQuery{}.Validate, queries.ErrGetOrderQueryIsNotConstructed},
		{"list deliveries", queries.ListDeliveriesQuery{}.Validate, queries.ErrListDeliveriesQueryIsNotConstructed},
		{"count unpaired", queries.CountUnpairedOrdersQuery{}.Validate, queries.ErrCountUnpairedOrdersQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.expected)
		})
	}
}

func TestNewListOrdersQuery(t *testing.T) {
	all := queries.NewListOrdersQuery()
	require.NoError(t, all.Validate())
	assert.Nil(t, all.ClientID())

	clientID := kernel.NewUUID()
	filtered, err := queries.NewListOrdersOfClientQuery(clientID)
	require.NoError(t, err)
	require.NotNil(t, filtered.ClientID())
	assert.Equal(t, clientID, *filtered.ClientID())

	_, err = queries.NewListOrdersOfClientQuery(kernel.UUID{})
	assert.Error(t, err)
}

func TestNewGetOrderQuery(t *testing.T) {
	id := kernel.NewUUID()
	q, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, q.OrderID())

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	assert.Error(t, err)
}
