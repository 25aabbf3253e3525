package commands_test

import (
	"context"
	"testing"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/model/tariff"
	"oms/internal/core/domain/services"
	"oms/internal/core/ports"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrderFixture(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()},
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, nil, nil,
	)
	require.NoError(t, err)
	require.NoError(t, o.AttachDocument(kernel.NewUUID()))
	return o
}

func TestCreateOrderDetailsCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	stored := storedOrderFixture(t)

	parts := []commands.TranslationOperationPart{
		{ID: kernel.NewUUID(), CharCount: 40, CharCountWithSpaces: 45},
		{ID: kernel.NewUUID(), CharCount: 50, CharCountWithSpaces: 55},
	}
	cmd, err := commands.NewCreateOrderDetailsCommand(stored.ID(), parts)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tariffRepo := new(MockTariffRepository)
	users := new(MockUserServiceClient)
	dispatcher := new(MockEventDispatcher)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("GetPriceRows", ctx, stored.SourceLanguageID(), stored.TargetLanguageIDs()).
			Return(singlePriceRow(10), nil).Once(),
		tariffRepo.On("GetTerminologyRate", ctx, stored.TerminologyID()).
			Return(&tariff.TerminologyPriceRate{Rate: decimal.NewFromFloat(0.1)}, nil).Once(),
		orderRepo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	users.On("GetTranslatorsByQuality", ctx, stored.TranslationQualityID()).
		Return([]ports.User{{ID: kernel.NewUUID(), Email: "t1@example.com"}}, nil).Once()
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("[]events.EventMessage")).Return(nil).Once()

	h := commands.NewCreateOrderDetailsCommandHandler(
		factory, users, dispatcher, services.NewPriceCalculator(), discardLogger(),
	)
	require.NoError(t, h.Handle(ctx, cmd))

	details := stored.Details()
	require.Len(t, details, 2)

	// 40 chars fall in the first bucket: 40 * 10 * 1.1 = 440
	first := details[0].Prices(order.RoleTranslator)
	assert.True(t, first.Offered.Equal(decimal.NewFromInt(440)), "got %s", first.Offered)
	assert.Equal(t, first.Average, first.Offered)
	assert.Equal(t, order.Open, details[0].Operation().ProgressStatus())

	second := details[1].Prices(order.RoleTranslator)
	assert.True(t, second.Offered.Equal(decimal.NewFromInt(550)), "got %s", second.Offered)

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	tariffRepo.AssertExpectations(t)
	users.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCreateOrderDetailsCommandHandler_Handle_PartPriceKeysOnCharCount(t *testing.T) {
	ctx := context.Background()
	stored := storedOrderFixture(t)

	// The two counts straddle two tier boundaries. Pricing must bucket and
	// multiply by the plain character count, not the withSpaces one.
	cmd, err := commands.NewCreateOrderDetailsCommand(stored.ID(), []commands.TranslationOperationPart{
		{ID: kernel.NewUUID(), CharCount: 90, CharCountWithSpaces: 150},
	})
	require.NoError(t, err)

	priceRows := []tariff.PriceList{{
		Char0To100:   decimal.NewFromInt(10),
		Char100To150: decimal.NewFromInt(9),
		Char150To200: decimal.NewFromInt(8),
	}}

	orderRepo := new(MockOrderRepository)
	tariffRepo := new(MockTariffRepository)
	users := new(MockUserServiceClient)
	dispatcher := new(MockEventDispatcher)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("GetPriceRows", ctx, stored.SourceLanguageID(), stored.TargetLanguageIDs()).
			Return(priceRows, nil).Once(),
		tariffRepo.On("GetTerminologyRate", ctx, stored.TerminologyID()).
			Return(&tariff.TerminologyPriceRate{Rate: decimal.Zero}, nil).Once(),
		orderRepo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	users.On("GetTranslatorsByQuality", ctx, stored.TranslationQualityID()).
		Return(nil, nil).Once()

	h := commands.NewCreateOrderDetailsCommandHandler(
		factory, users, dispatcher, services.NewPriceCalculator(), discardLogger(),
	)
	require.NoError(t, h.Handle(ctx, cmd))

	details := stored.Details()
	require.Len(t, details, 1)

	// 90 * 10 = 900; keying on 150 withSpaces chars would give 8 * 150 = 1200
	offered := details[0].Prices(order.RoleTranslator).Offered
	assert.True(t, offered.Equal(decimal.NewFromInt(900)), "got %s", offered)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	tariffRepo.AssertExpectations(t)
}

func TestCreateOrderDetailsCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderDetailsCommand(orderID, []commands.TranslationOperationPart{
		{ID: kernel.NewUUID(), CharCount: 40, CharCountWithSpaces: 45},
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	dispatcher := new(MockEventDispatcher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderDetailsCommandHandler(
		factory, new(MockUserServiceClient), dispatcher, services.NewPriceCalculator(), discardLogger(),
	)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderDetailsCommandHandler_Handle_NotificationFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	stored := storedOrderFixture(t)

	cmd, err := commands.NewCreateOrderDetailsCommand(stored.ID(), []commands.TranslationOperationPart{
		{ID: kernel.NewUUID(), CharCount: 40, CharCountWithSpaces: 45},
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tariffRepo := new(MockTariffRepository)
	users := new(MockUserServiceClient)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("GetPriceRows", ctx, stored.SourceLanguageID(), stored.TargetLanguageIDs()).
			Return(singlePriceRow(10), nil).Once(),
		tariffRepo.On("GetTerminologyRate", ctx, stored.TerminologyID()).
			Return(&tariff.TerminologyPriceRate{Rate: decimal.Zero}, nil).Once(),
		orderRepo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	users.On("GetTranslatorsByQuality", ctx, stored.TranslationQualityID()).
		Return(nil, assert.AnError).Once()

	h := commands.NewCreateOrderDetailsCommandHandler(
		factory, users, new(MockEventDispatcher), services.NewPriceCalculator(), discardLogger(),
	)
	require.NoError(t, h.Handle(ctx, cmd))
	users.AssertExpectations(t)
}
