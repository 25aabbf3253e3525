package queries

import (
	"errors"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists all orders as summary rows, without details or
// operations.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order listing.
// This is a parameterless query.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse represents one order summary row.
type GetOrdersQueryResponse struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	Status                string
	CalculatedPrice       decimal.Decimal
	VatPrice              decimal.Decimal
	PotentialDeliveryDate time.Time
	Active                bool
}
