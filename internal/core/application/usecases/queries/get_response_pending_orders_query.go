package queries

import (
	"errors"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetResponsePendingOrdersQueryIsNotConstructed = errors.New(
	"GetResponsePendingOrdersQuery must be created via NewGetResponsePendingOrdersQuery constructor",
)

// GetResponsePendingOrdersQuery retrieves active orders that still have
// operations open for translator offers. Used by the notification job and by
// the monitoring endpoint.
type GetResponsePendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetResponsePendingOrdersQuery creates a query for response pending orders.
// This is a parameterless query.
func NewGetResponsePendingOrdersQuery() GetResponsePendingOrdersQuery {
	return GetResponsePendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetResponsePendingOrdersQueryIsNotConstructed if validation fails.
func (q GetResponsePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetResponsePendingOrdersQueryIsNotConstructed)
}

// GetResponsePendingOrdersQueryResponse represents one order awaiting
// translator offers.
type GetResponsePendingOrdersQueryResponse struct {
	ID                    kernel.UUID
	TranslationQualityID  kernel.UUID
	CalculatedPrice       decimal.Decimal
	PotentialDeliveryDate time.Time
	OpenOperationCount    int
}
