package commands

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to overwrite an order's
// status, addressed by one of the order's translation operations. Used by
// downstream services that track work by operation rather than by order.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	translationOperationID kernel.UUID
	status                 order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to set the status of the order
// owning the given translation operation.
func NewUpdateOrderStatusCommand(
	translationOperationID kernel.UUID, status order.Status,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setTranslationOperationID(translationOperationID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// TranslationOperationID returns the operation addressing the order.
func (c UpdateOrderStatusCommand) TranslationOperationID() kernel.UUID {
	return c.translationOperationID
}

// Status returns the status to set.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setTranslationOperationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.translationOperationID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
