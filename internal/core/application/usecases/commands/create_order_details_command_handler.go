package commands

import (
	"context"
	"fmt"
	"log/slog"

	"oms/internal/core/domain/events"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/model/tariff"
	"oms/internal/core/domain/services"
	"oms/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CreateOrderDetailsCommandHandler creates an order's details from the
// document parts reported by the partitioning service. Each part is priced
// individually with the order's own tariff inputs, so parts of different
// sizes get fair per-part offers.
type CreateOrderDetailsCommandHandler struct {
	uowFactory UoWFactory
	users      ports.UserServiceClient
	dispatcher ports.EventDispatcher
	pricing    services.PriceCalculator
	logger     *slog.Logger
}

// NewCreateOrderDetailsCommandHandler creates a handler for order detail creation.
func NewCreateOrderDetailsCommandHandler(
	uowFactory UoWFactory,
	users ports.UserServiceClient,
	dispatcher ports.EventDispatcher,
	pricing services.PriceCalculator,
	logger *slog.Logger,
) CreateOrderDetailsCommandHandler {
	return CreateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		dispatcher: dispatcher,
		pricing:    pricing,
		logger:     logger,
	}
}

// Handle processes the order detail creation command.
// Loads the order, prices every part, replaces the order's detail set in one
// transaction, then notifies candidate translators. The notification is a
// side effect; its failure is logged, not returned.
func (h *CreateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd CreateOrderDetailsCommand) error {
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

	pricingInput, err := h.loadPricingInput(ctx, uow, existing)
	if err != nil {
		return err
	}

	details := make([]*order.OrderDetail, 0, len(cmd.Operations()))
	for _, part := range cmd.Operations() {
		operation, err := order.NewTranslationOperation(part.ID, part.CharCount, part.CharCountWithSpaces)
		if err != nil {
			return err
		}

		// Part prices are bucketed and multiplied by charCount. The
		// withSpaces count only drives the order-level price.
		pricingInput.CharCount = part.CharCount
		partPrice, err := h.pricing.Calculate(pricingInput)
		if err != nil {
			return err
		}

		detail, err := order.NewOrderDetail(kernel.NewUUID(), existing.ID(), operation, partPrice, nil)
		if err != nil {
			return err
		}

		details = append(details, detail)
	}

	if err = existing.ReplaceDetails(details); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyTranslators(ctx, existing)

	return nil
}

// loadPricingInput gathers the order-level pricing inputs shared by all parts.
// The per-part character count is filled in by the caller.
func (h *CreateOrderDetailsCommandHandler) loadPricingInput(
	ctx context.Context, uow UoW, existing *order.Order,
) (services.PriceInput, error) {
	tariffs := uow.TariffRepository()

	priceRows, err := tariffs.GetPriceRows(ctx, existing.SourceLanguageID(), existing.TargetLanguageIDs())
	if err != nil {
		return services.PriceInput{}, err
	}

	terminologyRate, err := tariffs.GetTerminologyRate(ctx, existing.TerminologyID())
	if err != nil {
		return services.PriceInput{}, err
	}

	var companyOffer *tariff.CompanyPriceOffer
	if existing.CompanyID() != nil {
		companyOffer, err = tariffs.GetCompanyOffer(ctx, *existing.CompanyID())
		if err != nil {
			return services.PriceInput{}, err
		}
	}

	var discountRate *decimal.Decimal
	if existing.CampaignItemID() != nil {
		item, err := uow.CampaignRepository().Get(ctx, *existing.CampaignItemID())
		if err != nil {
			return services.PriceInput{}, err
		}
		rate := item.DiscountRate()
		discountRate = &rate
	}

	return services.PriceInput{
		PriceRows:            priceRows,
		TerminologyRate:      terminologyRate,
		CompanyOffer:         companyOffer,
		CampaignDiscountRate: discountRate,
	}, nil
}

func (h *CreateOrderDetailsCommandHandler) notifyTranslators(ctx context.Context, existing *order.Order) {
	translators, err := h.users.GetTranslatorsByQuality(ctx, existing.TranslationQualityID())
	if err != nil {
		h.logger.Error("notify translators: lookup failed",
			slog.String("orderId", existing.ID().String()), slog.Any("error", err))
		return
	}

	if len(translators) == 0 {
		return
	}

	recipients := make([]string, 0, len(translators))
	for _, translator := range translators {
		recipients = append(recipients, translator.Email)
	}

	event := events.NotifyTranslatorsEvent{
		Subject: "New translation order",
		Message: fmt.Sprintf("Order %s is open for offers", existing.ID().String()),
		To:      recipients,
	}

	message, err := event.ToEventMessage()
	if err != nil {
		h.logger.Error("notify translators: marshal failed",
			slog.String("orderId", existing.ID().String()), slog.Any("error", err))
		return
	}

	if err = h.dispatcher.Dispatch(ctx, []events.EventMessage{message}); err != nil {
		h.logger.Error("notify translators: dispatch failed",
			slog.String("orderId", existing.ID().String()), slog.Any("error", err))
	}
}
