package commands_test

import (
	"context"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/events"
	"oms/internal/core/domain/model/campaign"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/model/tariff"
	"oms/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderDetailID(ctx context.Context, detailID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTranslationOperationID(
	ctx context.Context, operationID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCampaignRepository struct{ mock.Mock }

func (m *MockCampaignRepository) Get(ctx context.Context, id kernel.UUID) (*campaign.CampaignItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.CampaignItem), args.Error(1)
}

func (m *MockCampaignRepository) GetByCode(ctx context.Context, code string) (*campaign.CampaignItem, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.CampaignItem), args.Error(1)
}

func (m *MockCampaignRepository) Update(ctx context.Context, item *campaign.CampaignItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockTariffRepository struct{ mock.Mock }

func (m *MockTariffRepository) GetPriceRows(
	ctx context.Context, sourceLanguageID kernel.UUID, targetLanguageIDs []kernel.UUID,
) ([]tariff.PriceList, error) {
	args := m.Called(ctx, sourceLanguageID, targetLanguageIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tariff.PriceList), args.Error(1)
}

func (m *MockTariffRepository) GetTerminologyRate(
	ctx context.Context, terminologyID kernel.UUID,
) (*tariff.TerminologyPriceRate, error) {
	args := m.Called(ctx, terminologyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariff.TerminologyPriceRate), args.Error(1)
}

func (m *MockTariffRepository) GetCompanyOffer(
	ctx context.Context, companyID kernel.UUID,
) (*tariff.CompanyPriceOffer, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariff.CompanyPriceOffer), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CampaignRepository() ports.CampaignRepository {
	args := m.Called()
	return args.Get(0).(ports.CampaignRepository)
}

func (m *MockUoW) TariffRepository() ports.TariffRepository {
	args := m.Called()
	return args.Get(0).(ports.TariffRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDocumentServiceClient struct{ mock.Mock }

func (m *MockDocumentServiceClient) CreateDocument(
	ctx context.Context, charCount int, charCountWithSpaces int, pageCount int, path string,
) (ports.Document, error) {
	args := m.Called(ctx, charCount, charCountWithSpaces, pageCount, path)
	return args.Get(0).(ports.Document), args.Error(1)
}

type MockTranslationServiceClient struct{ mock.Mock }

func (m *MockTranslationServiceClient) GetAverageDocumentPartCount(
	ctx context.Context, orderID kernel.UUID,
) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

type MockUserServiceClient struct{ mock.Mock }

func (m *MockUserServiceClient) GetTranslatorsByQuality(
	ctx context.Context, translationQualityID kernel.UUID,
) ([]ports.User, error) {
	args := m.Called(ctx, translationQualityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.User), args.Error(1)
}

func (m *MockUserServiceClient) GetEditorsByQuality(
	ctx context.Context, translationQualityID kernel.UUID,
) ([]ports.User, error) {
	args := m.Called(ctx, translationQualityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.User), args.Error(1)
}

func (m *MockUserServiceClient) GetProofReadersByQuality(
	ctx context.Context, translationQualityID kernel.UUID,
) ([]ports.User, error) {
	args := m.Called(ctx, translationQualityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.User), args.Error(1)
}

type MockEventDispatcher struct{ mock.Mock }

func (m *MockEventDispatcher) Dispatch(ctx context.Context, messages []events.EventMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}
