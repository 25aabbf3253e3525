package commands

import (
	"context"
)

// DeactivateOrderCommandHandler handles soft deletion of orders.
type DeactivateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeactivateOrderCommandHandler creates a handler for order deactivation.
func NewDeactivateOrderCommandHandler(uowFactory OrderUoWFactory) DeactivateOrderCommandHandler {
	return DeactivateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command.
// Loads the order, clears its active flag, and persists the change.
// A missing order surfaces as not found.
func (h *DeactivateOrderCommandHandler) Handle(ctx context.Context, cmd DeactivateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	existing.Deactivate()

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
