package commands

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"
)

var ErrDeactivateOrderCommandIsNotConstructed = errors.New(
	"DeactivateOrderCommand must be created via NewDeactivateOrderCommand constructor",
)

// DeactivateOrderCommand represents a request to soft delete an order.
// The order row is kept; only its active flag is cleared.
type DeactivateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateOrderCommand creates a command to deactivate the given order.
func NewDeactivateOrderCommand(orderID kernel.UUID) (DeactivateOrderCommand, error) {
	deactivateCommand := DeactivateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deactivateCommand.setOrderID(orderID); err != nil {
		return DeactivateOrderCommand{}, err
	}

	return deactivateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeactivateOrderCommandIsNotConstructed if validation fails.
func (c DeactivateOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateOrderCommandIsNotConstructed)
}

// OrderID returns the order to deactivate.
func (c DeactivateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeactivateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
