package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/campaign"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/model/tariff"
	"oms/internal/core/domain/services"
	"oms/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCreateOrderHandler(
	factory commands.UoWFactory,
	documents ports.DocumentServiceClient,
	translations ports.TranslationServiceClient,
	dispatcher ports.EventDispatcher,
) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		factory, documents, translations, dispatcher,
		services.NewPriceCalculator(),
		services.NewDeliveryEstimator(services.DefaultCharsPerDay),
		discardLogger(),
	)
}

func createOrderCommandWithCode(t *testing.T, campaignCode string) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID()},
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil, nil, nil,
		90, 90, 1,
		"/docs/contract.docx",
		campaignCode,
	)
	require.NoError(t, err)
	return cmd
}

func singlePriceRow(rate int64) []tariff.PriceList {
	return []tariff.PriceList{{Char0To100: decimal.NewFromInt(rate)}}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCommandWithCode(t, "")
	docID := kernel.NewUUID()

	documents := new(MockDocumentServiceClient)
	translations := new(MockTranslationServiceClient)
	dispatcher := new(MockEventDispatcher)
	tariffRepo := new(MockTariffRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	documents.On("CreateDocument", ctx, 90, 90, 1, "/docs/contract.docx").
		Return(ports.Document{ID: docID}, nil).Once()
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("GetPriceRows", ctx, cmd.SourceLanguageID(), cmd.TargetLanguageIDs()).
			Return(singlePriceRow(10), nil).Once(),
		tariffRepo.On("GetTerminologyRate", ctx, cmd.TerminologyID()).
			Return(&tariff.TerminologyPriceRate{Rate: decimal.NewFromFloat(0.1)}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	translations.On("GetAverageDocumentPartCount", ctx, cmd.OrderID()).Return(3, nil).Once()
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("[]events.EventMessage")).Return(nil).Once()

	h := newCreateOrderHandler(factory, documents, translations, dispatcher)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Created, created.Status())
	assert.Equal(t, docID, created.TranslationDocumentID())
	assert.True(t, created.CalculatedPrice().Equal(decimal.NewFromInt(990)),
		"got %s", created.CalculatedPrice())
	assert.True(t, created.VatPrice().Equal(decimal.NewFromFloat(178.2)),
		"got %s", created.VatPrice())
	assert.Nil(t, created.CampaignItemID())

	documents.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	tariffRepo.AssertExpectations(t)
	translations.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CampaignDiscountApplied(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCommandWithCode(t, "SPRING20")

	now := time.Now().UTC()
	item, err := campaign.NewCampaignItem(
		kernel.NewUUID(), "SPRING20", decimal.NewFromFloat(0.2),
		now.Add(-time.Hour), now.Add(time.Hour), "spring promo",
	)
	require.NoError(t, err)

	documents := new(MockDocumentServiceClient)
	translations := new(MockTranslationServiceClient)
	dispatcher := new(MockEventDispatcher)
	campaignRepo := new(MockCampaignRepository)
	tariffRepo := new(MockTariffRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	campaignUoW := new(MockUoW)
	factory := new(MockUoWFactory)

	documents.On("CreateDocument", ctx, 90, 90, 1, "/docs/contract.docx").
		Return(ports.Document{ID: kernel.NewUUID()}, nil).Once()
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CampaignRepository").Return(campaignRepo).Once(),
		campaignRepo.On("GetByCode", ctx, "SPRING20").Return(item, nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("GetPriceRows", ctx, cmd.SourceLanguageID(), cmd.TargetLanguageIDs()).
			Return(singlePriceRow(10), nil).Once(),
		tariffRepo.On("GetTerminologyRate", ctx, cmd.TerminologyID()).
			Return(&tariff.TerminologyPriceRate{Rate: decimal.NewFromFloat(0.1)}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		// campaign consumption runs in its own unit of work
		factory.On("Create").Return(campaignUoW).Once(),
		campaignUoW.On("Begin", ctx).Return(nil).Once(),
		campaignUoW.On("CampaignRepository").Return(campaignRepo).Once(),
		campaignRepo.On("Update", ctx, item).Return(nil).Once(),
		campaignUoW.On("Commit", ctx).Return(nil).Once(),
		campaignUoW.On("Rollback", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	translations.On("GetAverageDocumentPartCount", ctx, cmd.OrderID()).Return(2, nil).Once()
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("[]events.EventMessage")).Return(nil).Once()

	h := newCreateOrderHandler(factory, documents, translations, dispatcher)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, created.CalculatedPrice().Equal(decimal.NewFromInt(792)),
		"got %s", created.CalculatedPrice())
	require.NotNil(t, created.CampaignItemID())
	assert.True(t, created.CampaignItemID().IsEqual(item.ID()))
	assert.True(t, item.IsUsed())

	uow.AssertExpectations(t)
	campaignUoW.AssertExpectations(t)
	campaignRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DocumentRegistrationFails(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCommandWithCode(t, "")

	documents := new(MockDocumentServiceClient)
	documents.On("CreateDocument", ctx, 90, 90, 1, "/docs/contract.docx").
		Return(ports.Document{}, errors.New("document service unavailable")).Once()

	factory := new(MockUoWFactory)
	h := newCreateOrderHandler(factory, documents, new(MockTranslationServiceClient), new(MockEventDispatcher))

	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDocumentRegistrationFailed)
	factory.AssertNotCalled(t, "Create")
	documents.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_TerminologyRateMissing(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCommandWithCode(t, "")

	documents := new(MockDocumentServiceClient)
	tariffRepo := new(MockTariffRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	documents.On("CreateDocument", ctx, 90, 90, 1, "/docs/contract.docx").
		Return(ports.Document{ID: kernel.NewUUID()}, nil).Once()
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("GetPriceRows", ctx, cmd.SourceLanguageID(), cmd.TargetLanguageIDs()).
			Return(singlePriceRow(10), nil).Once(),
		tariffRepo.On("GetTerminologyRate", ctx, cmd.TerminologyID()).Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := newCreateOrderHandler(factory, documents, new(MockTranslationServiceClient), new(MockEventDispatcher))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrTerminologyRateNotDefined)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_PartCountFailureCompensates(t *testing.T) {
	ctx := context.Background()
	cmd := createOrderCommandWithCode(t, "")

	documents := new(MockDocumentServiceClient)
	translations := new(MockTranslationServiceClient)
	dispatcher := new(MockEventDispatcher)
	tariffRepo := new(MockTariffRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	compensationUoW := new(MockUoW)
	factory := new(MockUoWFactory)

	stored, err := order.NewOrder(
		cmd.OrderID(), cmd.SourceLanguageID(), cmd.TargetLanguageIDs(),
		cmd.TerminologyID(), cmd.CustomerID(), cmd.TranslationQualityID(),
		nil, nil, nil,
	)
	require.NoError(t, err)

	documents.On("CreateDocument", ctx, 90, 90, 1, "/docs/contract.docx").
		Return(ports.Document{ID: kernel.NewUUID()}, nil).Once()
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("GetPriceRows", ctx, cmd.SourceLanguageID(), cmd.TargetLanguageIDs()).
			Return(singlePriceRow(10), nil).Once(),
		tariffRepo.On("GetTerminologyRate", ctx, cmd.TerminologyID()).
			Return(&tariff.TerminologyPriceRate{Rate: decimal.NewFromFloat(0.1)}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		translations.On("GetAverageDocumentPartCount", ctx, cmd.OrderID()).
			Return(0, errors.New("translation service unavailable")).Once(),
		// failed part count estimation deactivates the persisted order
		factory.On("Create").Return(compensationUoW).Once(),
		compensationUoW.On("Begin", ctx).Return(nil).Once(),
		compensationUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(stored, nil).Once(),
		orderRepo.On("Update", ctx, stored).Return(nil).Once(),
		compensationUoW.On("Commit", ctx).Return(nil).Once(),
		compensationUoW.On("Rollback", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := newCreateOrderHandler(factory, documents, translations, dispatcher)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPartCountEstimationFailed)

	assert.False(t, stored.IsActive())
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	compensationUoW.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
