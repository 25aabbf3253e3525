// Package queries contains read-only operations against the database.
// Query handlers bypass the domain model and read projections directly,
// keeping the read side cheap and free of aggregate loading.
package queries

import (
	"errors"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with its details and operations.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the given order id.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderDetailResponse represents one order detail with its operation state and
// the translator-facing prices.
type OrderDetailResponse struct {
	ID                      kernel.UUID
	TranslationOperationID  kernel.UUID
	ProgressStatus          string
	TranslatorOfferedPrice  decimal.Decimal
	TranslatorAcceptedPrice decimal.Decimal
}

// GetOrderByIDQueryResponse represents an order read model.
type GetOrderByIDQueryResponse struct {
	ID                    kernel.UUID
	Status                string
	CalculatedPrice       decimal.Decimal
	VatPrice              decimal.Decimal
	PotentialDeliveryDate time.Time
	Active                bool
	Details               []OrderDetailResponse
}
