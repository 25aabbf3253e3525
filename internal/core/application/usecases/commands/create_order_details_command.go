package commands

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"
)

var (
	ErrCreateOrderDetailsCommandIsNotConstructed = errors.New(
		"CreateOrderDetailsCommand must be created via NewCreateOrderDetailsCommand constructor",
	)
	ErrOperationsAreRequired = errors.New("at least one translation operation is required")
)

// TranslationOperationPart describes one document part for which an order
// detail must be created, with the part's own character counts.
type TranslationOperationPart struct {
	ID                  kernel.UUID
	CharCount           int
	CharCountWithSpaces int
}

// CreateOrderDetailsCommand represents a request to create an order's details
// from the document parts produced by the partitioning service. It arrives via
// the event ingress rather than the HTTP API.
type CreateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	operations []TranslationOperationPart

	guard guard.ConstructorGuard
}

// NewCreateOrderDetailsCommand creates a command to attach details to an order.
// Requires a valid order id and at least one operation with a valid id and
// positive character counts.
func NewCreateOrderDetailsCommand(
	orderID kernel.UUID, operations []TranslationOperationPart,
) (CreateOrderDetailsCommand, error) {
	detailsCommand := CreateOrderDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		detailsCommand.setOrderID(orderID),
		detailsCommand.setOperations(operations),
	); err != nil {
		return CreateOrderDetailsCommand{}, err
	}

	return detailsCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderDetailsCommandIsNotConstructed if validation fails.
func (c CreateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderDetailsCommandIsNotConstructed)
}

// OrderID returns the order the details belong to.
func (c CreateOrderDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Operations returns the document parts to create details for.
func (c CreateOrderDetailsCommand) Operations() []TranslationOperationPart {
	return c.operations
}

func (c *CreateOrderDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderDetailsCommand) setOperations(operations []TranslationOperationPart) error {
	if len(operations) == 0 {
		return ErrOperationsAreRequired
	}
	for _, op := range operations {
		if err := op.ID.Validate(); err != nil {
			return err
		}
		if op.CharCount <= 0 || op.CharCountWithSpaces <= 0 {
			return ErrCharCountIsInvalid
		}
	}

	c.operations = operations
	return nil
}
