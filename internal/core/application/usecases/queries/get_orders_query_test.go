package queries_test

import (
	"testing"

	"oms/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_ValidInput(t *testing.T) {
	query := queries.NewGetOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrdersQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
}
