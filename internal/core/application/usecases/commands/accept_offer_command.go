package commands

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAcceptOfferCommandIsNotConstructed = errors.New(
		"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
	)
	ErrPriceIsInvalid = errors.New("price must not be negative")
)

// AcceptOfferCommand represents a role holder accepting the offered work on an
// order detail. The same command serves translators, editors, and proofreaders;
// the role determines which pipeline stage the acceptance claims.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	orderDetailID kernel.UUID
	userID        kernel.UUID
	role          order.Role
	price         decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command for a user to accept an offer in the
// given role at the given price.
func NewAcceptOfferCommand(
	orderDetailID kernel.UUID, userID kernel.UUID, role order.Role, price decimal.Decimal,
) (AcceptOfferCommand, error) {
	offerCommand := AcceptOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		offerCommand.setOrderDetailID(orderDetailID),
		offerCommand.setUserID(userID),
		offerCommand.setRole(role),
		offerCommand.setPrice(price),
	); err != nil {
		return AcceptOfferCommand{}, err
	}

	return offerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOfferCommandIsNotConstructed if validation fails.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// OrderDetailID returns the detail whose offer is being accepted.
func (c AcceptOfferCommand) OrderDetailID() kernel.UUID {
	return c.orderDetailID
}

// UserID returns the accepting user.
func (c AcceptOfferCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the pipeline role the user accepts the work in.
func (c AcceptOfferCommand) Role() order.Role {
	return c.role
}

// Price returns the accepted price.
func (c AcceptOfferCommand) Price() decimal.Decimal {
	return c.price
}

func (c *AcceptOfferCommand) setOrderDetailID(orderDetailID kernel.UUID) error {
	if err := orderDetailID.Validate(); err != nil {
		return err
	}

	c.orderDetailID = orderDetailID
	return nil
}

func (c *AcceptOfferCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AcceptOfferCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *AcceptOfferCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
