package order

import (
	"errors"
	"time"

	"oms/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrOrderDetailIsNotConstructed is returned when an OrderDetail was not
// created through NewOrderDetail or RestoreOrderDetail.
var ErrOrderDetailIsNotConstructed = errors.New(
	"OrderDetail must be created via NewOrderDetail constructor",
)

// PriceSet carries one role's price trio for a unit of work: the computed
// average, the price offered to the role holder, and the price the role
// holder accepted.
type PriceSet struct {
	Average  decimal.Decimal
	Offered  decimal.Decimal
	Accepted decimal.Decimal
}

// OrderDetail is one priced, assignable unit of work within an order,
// bound 1:1 to a TranslationOperation.
type OrderDetail struct {
	id      kernel.UUID
	orderID kernel.UUID

	operation *TranslationOperation

	translatorPrices  PriceSet
	editorPrices      PriceSet
	proofReaderPrices PriceSet

	createdBy *kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewOrderDetail creates a detail for the given order and operation with the
// translator's average and offered price set to the part's computed price.
func NewOrderDetail(
	id, orderID kernel.UUID,
	operation *TranslationOperation,
	partPrice decimal.Decimal,
	createdBy *kernel.UUID,
) (*OrderDetail, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), operation.Validate()); err != nil {
		return nil, err
	}

	return &OrderDetail{
		id:        id,
		orderID:   orderID,
		operation: operation,
		translatorPrices: PriceSet{
			Average: partPrice,
			Offered: partPrice,
		},
		createdBy:     createdBy,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrderDetail reconstructs a detail from persistence.
func RestoreOrderDetail(
	id, orderID kernel.UUID,
	operation *TranslationOperation,
	translatorPrices, editorPrices, proofReaderPrices PriceSet,
	createdBy *kernel.UUID,
	createdAt time.Time,
) (*OrderDetail, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), operation.Validate()); err != nil {
		return nil, err
	}

	return &OrderDetail{
		id:                id,
		orderID:           orderID,
		operation:         operation,
		translatorPrices:  translatorPrices,
		editorPrices:      editorPrices,
		proofReaderPrices: proofReaderPrices,
		createdBy:         createdBy,
		createdAt:         createdAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the detail was created through a constructor.
func (d *OrderDetail) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrOrderDetailIsNotConstructed
	}
	return nil
}

// ID returns the detail's unique identifier.
func (d *OrderDetail) ID() kernel.UUID {
	return d.id
}

// OrderID returns the parent order's identifier.
func (d *OrderDetail) OrderID() kernel.UUID {
	return d.orderID
}

// Operation returns the translation operation bound to this detail.
func (d *OrderDetail) Operation() *TranslationOperation {
	return d.operation
}

// Prices returns the given role's price trio.
func (d *OrderDetail) Prices(role Role) PriceSet {
	switch role {
	case RoleTranslator:
		return d.translatorPrices
	case RoleEditor:
		return d.editorPrices
	case RoleProofReader:
		return d.proofReaderPrices
	default:
		return PriceSet{}
	}
}

// CreatedBy returns the user that created the detail, if recorded.
func (d *OrderDetail) CreatedBy() *kernel.UUID {
	return d.createdBy
}

// CreatedAt returns the detail's creation timestamp.
func (d *OrderDetail) CreatedAt() time.Time {
	return d.createdAt
}

// AcceptOffer claims the detail's operation for the given role and records the
// accepted price on the role's price set. The claim's optimistic precondition
// is checked first; on violation nothing is mutated.
func (d *OrderDetail) AcceptOffer(role Role, userID kernel.UUID, price decimal.Decimal) error {
	if err := d.operation.Claim(role, userID); err != nil {
		return err
	}

	switch role {
	case RoleTranslator:
		d.translatorPrices.Accepted = price
	case RoleEditor:
		d.editorPrices.Accepted = price
	case RoleProofReader:
		d.proofReaderPrices.Accepted = price
	}

	return nil
}
