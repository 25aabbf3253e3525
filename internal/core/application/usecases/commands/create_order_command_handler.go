package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"oms/internal/core/domain/events"
	"oms/internal/core/domain/model/campaign"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/model/tariff"
	"oms/internal/core/domain/services"
	"oms/internal/core/ports"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrDocumentRegistrationFailed indicates the document service rejected or
	// failed the synchronous document registration. Nothing has been persisted
	// when this error is returned.
	ErrDocumentRegistrationFailed = errors.New("document registration failed")

	// ErrPartCountEstimationFailed indicates the translation service could not
	// estimate the document part count. The order has been rolled back with
	// compensating writes when this error is returned.
	ErrPartCountEstimationFailed = errors.New("document part count estimation failed")
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Registers the source document, resolves an optional campaign code, prices
// the order, and persists it in Created status.
//
// Order creation spans this service and two external ones, so the handler runs
// as a short saga: the order is persisted in its own transaction, then the
// campaign is consumed and the part count estimated. Failures after the order
// commit are undone with compensating writes (deactivate the order, release
// the campaign) rather than a rollback.
type CreateOrderCommandHandler struct {
	uowFactory   UoWFactory
	documents    ports.DocumentServiceClient
	translations ports.TranslationServiceClient
	dispatcher   ports.EventDispatcher
	pricing      services.PriceCalculator
	estimator    services.DeliveryEstimator
	logger       *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence, clients for the
// document and translation services, and an event dispatcher.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	documents ports.DocumentServiceClient,
	translations ports.TranslationServiceClient,
	dispatcher ports.EventDispatcher,
	pricing services.PriceCalculator,
	estimator services.DeliveryEstimator,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		documents:    documents,
		translations: translations,
		dispatcher:   dispatcher,
		pricing:      pricing,
		estimator:    estimator,
		logger:       logger,
	}
}

// Handle processes the order creation command and returns the persisted order.
//
// Steps: construct the order, estimate delivery, register the document,
// resolve the campaign, price, persist, consume the campaign, estimate the
// part count, and dispatch the document partitioning event. The partitioning
// event is fire and forget; its failure is logged, not returned.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.SourceLanguageID(),
		cmd.TargetLanguageIDs(),
		cmd.TerminologyID(),
		cmd.CustomerID(),
		cmd.TranslationQualityID(),
		cmd.CompanyID(),
		cmd.CompanyTerminologyID(),
		cmd.CompanyDocumentTemplateID(),
	)
	if err != nil {
		return nil, err
	}

	newOrder.ScheduleDelivery(h.estimator.Estimate(time.Now().UTC(), cmd.CharCountWithSpaces()))

	doc, err := h.documents.CreateDocument(
		ctx, cmd.CharCount(), cmd.CharCountWithSpaces(), cmd.PageCount(), cmd.DocumentPath(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentRegistrationFailed, err)
	}

	if err = newOrder.AttachDocument(doc.ID); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := h.resolveCampaign(ctx, uow, cmd.CampaignCode())
	if err != nil {
		return nil, err
	}

	var discountRate *decimal.Decimal
	if item != nil {
		if err = newOrder.ApplyCampaign(item.ID()); err != nil {
			return nil, err
		}
		rate := item.DiscountRate()
		discountRate = &rate
	}

	price, err := h.priceOrder(ctx, uow.TariffRepository(), cmd, discountRate)
	if err != nil {
		return nil, err
	}
	newOrder.SetPricing(price)

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Point of no return: the order row exists. Failures below are undone
	// with compensating writes instead of a rollback.
	if item != nil {
		if err = h.consumeCampaign(ctx, item); err != nil {
			h.deactivateOrder(ctx, newOrder.ID())
			return nil, err
		}
	}

	partCount, err := h.translations.GetAverageDocumentPartCount(ctx, newOrder.ID())
	if err != nil {
		if item != nil {
			h.releaseCampaign(ctx, item.ID())
		}
		h.deactivateOrder(ctx, newOrder.ID())
		return nil, fmt.Errorf("%w: %w", ErrPartCountEstimationFailed, err)
	}

	h.dispatchPartitioningEvent(ctx, newOrder, partCount)

	return newOrder, nil
}

// resolveCampaign looks up the campaign item for the given code. An empty,
// unknown, or ineligible code yields no campaign rather than an error; the
// order simply proceeds without a discount.
func (h *CreateOrderCommandHandler) resolveCampaign(
	ctx context.Context, uow UoW, code string,
) (*campaign.CampaignItem, error) {
	if code == "" {
		return nil, nil //nolint:nilnil //absence of a campaign is a valid outcome
	}

	item, err := uow.CampaignRepository().GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil //nolint:nilnil //unknown codes are ignored
		}
		return nil, err
	}

	if !item.EligibleAt(time.Now().UTC()) {
		return nil, nil //nolint:nilnil //ineligible codes are ignored
	}

	return item, nil
}

func (h *CreateOrderCommandHandler) priceOrder(
	ctx context.Context,
	tariffs ports.TariffRepository,
	cmd CreateOrderCommand,
	discountRate *decimal.Decimal,
) (decimal.Decimal, error) {
	priceRows, err := tariffs.GetPriceRows(ctx, cmd.SourceLanguageID(), cmd.TargetLanguageIDs())
	if err != nil {
		return decimal.Zero, err
	}

	terminologyRate, err := tariffs.GetTerminologyRate(ctx, cmd.TerminologyID())
	if err != nil {
		return decimal.Zero, err
	}

	var companyOffer *tariff.CompanyPriceOffer
	if cmd.CompanyID() != nil {
		companyOffer, err = tariffs.GetCompanyOffer(ctx, *cmd.CompanyID())
		if err != nil {
			return decimal.Zero, err
		}
	}

	return h.pricing.Calculate(services.PriceInput{
		PriceRows:            priceRows,
		CharCount:            cmd.CharCountWithSpaces(),
		TerminologyRate:      terminologyRate,
		CompanyOffer:         companyOffer,
		CampaignDiscountRate: discountRate,
	})
}

// consumeCampaign marks the campaign item used in its own transaction.
// Campaign codes are single use; the flag flips only after the order commit
// so a failed order never burns a code.
func (h *CreateOrderCommandHandler) consumeCampaign(ctx context.Context, item *campaign.CampaignItem) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item.MarkUsed()
	if err := uow.CampaignRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseCampaign is the compensating write for consumeCampaign.
// Failures are logged; there is nothing more the saga can do with them.
func (h *CreateOrderCommandHandler) releaseCampaign(ctx context.Context, campaignItemID kernel.UUID) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.Error("release campaign: begin failed",
			slog.String("campaignItemId", campaignItemID.String()), slog.Any("error", err))
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CampaignRepository()
	item, err := repo.Get(ctx, campaignItemID)
	if err != nil {
		h.logger.Error("release campaign: load failed",
			slog.String("campaignItemId", campaignItemID.String()), slog.Any("error", err))
		return
	}

	item.MarkUnused()
	if err = repo.Update(ctx, item); err != nil {
		h.logger.Error("release campaign: update failed",
			slog.String("campaignItemId", campaignItemID.String()), slog.Any("error", err))
		return
	}

	if err = uow.Commit(ctx); err != nil {
		h.logger.Error("release campaign: commit failed",
			slog.String("campaignItemId", campaignItemID.String()), slog.Any("error", err))
	}
}

// deactivateOrder is the compensating write for the order commit.
func (h *CreateOrderCommandHandler) deactivateOrder(ctx context.Context, orderID kernel.UUID) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.Error("deactivate order: begin failed",
			slog.String("orderId", orderID.String()), slog.Any("error", err))
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, orderID)
	if err != nil {
		h.logger.Error("deactivate order: load failed",
			slog.String("orderId", orderID.String()), slog.Any("error", err))
		return
	}

	existing.Deactivate()
	if err = repo.Update(ctx, existing); err != nil {
		h.logger.Error("deactivate order: update failed",
			slog.String("orderId", orderID.String()), slog.Any("error", err))
		return
	}

	if err = uow.Commit(ctx); err != nil {
		h.logger.Error("deactivate order: commit failed",
			slog.String("orderId", orderID.String()), slog.Any("error", err))
	}
}

func (h *CreateOrderCommandHandler) dispatchPartitioningEvent(ctx context.Context, o *order.Order, partCount int) {
	event := events.CreateDocumentPartEvent{
		OrderID:               o.ID().Bytes(),
		TranslationDocumentID: o.TranslationDocumentID().Bytes(),
		PartCount:             partCount,
		CreatedAt:             time.Now().UTC(),
	}

	message, err := event.ToEventMessage()
	if err != nil {
		h.logger.Error("create document part event: marshal failed",
			slog.String("orderId", o.ID().String()), slog.Any("error", err))
		return
	}

	if err = h.dispatcher.Dispatch(ctx, []events.EventMessage{message}); err != nil {
		h.logger.Error("create document part event: dispatch failed",
			slog.String("orderId", o.ID().String()), slog.Any("error", err))
	}
}
