package commands

import (
	"context"
	"errors"

	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"
)

// AcceptOfferCommandHandler handles offer acceptance for all pipeline roles.
// The claim is optimistic: the detail's operation must still be in the stage
// the role expects, and when the stage pre-assigned a user it must be the
// caller. A lost race surfaces as a conflict with no state change.
type AcceptOfferCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
// Requires an OrderUoWFactory for transactional persistence.
func NewAcceptOfferCommandHandler(uowFactory OrderUoWFactory) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer acceptance command.
// Loads the owning order by detail id, claims the operation for the role,
// records the accepted price, and moves the order to InProcess when the
// accepting role is the translator. All writes share one transaction.
func (h *AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) error {
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
	existing, err := orderRepo.GetByOrderDetailID(ctx, cmd.OrderDetailID())
	if err != nil {
		return err
	}

	detail := existing.DetailByID(cmd.OrderDetailID())
	if detail == nil {
		return errs.NewObjectNotFoundError("orderDetailId", cmd.OrderDetailID().String())
	}

	if err = detail.AcceptOffer(cmd.Role(), cmd.UserID(), cmd.Price()); err != nil {
		if errors.Is(err, order.ErrOperationAlreadyClaimed) {
			return errs.NewConflictErrorWithCause("translationOperation", err)
		}
		return err
	}

	if cmd.Role() == order.RoleTranslator {
		if err = existing.StartProcessing(); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
