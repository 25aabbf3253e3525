package cmd

import (
	"log/slog"
	"strings"

	inkafka "oms/internal/adapters/in/kafka"
	"oms/internal/adapters/out/kafka"
	"oms/internal/adapters/out/postgres"
	"oms/internal/adapters/out/serviceclients"
	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/services"
	"oms/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	documents    *serviceclients.DocumentClient
	translations *serviceclients.TranslationClient
	users        *serviceclients.UserClient
	dispatcher   *kafka.Dispatcher

	pricing   services.PriceCalculator
	estimator services.DeliveryEstimator

	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),

		documents:    serviceclients.NewDocumentClient(config.DocumentServiceHost),
		translations: serviceclients.NewTranslationClient(config.TranslationServiceHost),
		users:        serviceclients.NewUserClient(config.UserServiceHost),
		dispatcher:   kafka.NewDispatcher(kafkaBrokers(config), config.KafkaEventsTopic),

		pricing:   services.NewPriceCalculator(),
		estimator: services.NewDeliveryEstimator(config.CharsPerDay),

		logger: logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f, c.documents, c.translations, c.dispatcher, c.pricing, c.estimator, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderDetailsCommandHandler() commands.CreateOrderDetailsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderDetailsCommandHandler(
		f, c.users, c.dispatcher, c.pricing, c.logger)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeactivateOrderCommandHandler() commands.DeactivateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetResponsePendingOrdersQueryHandler() queries.GetResponsePendingOrdersQueryHandler {
	return queries.NewGetResponsePendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProjection() *inkafka.Projection {
	return inkafka.NewProjection(
		kafkaBrokers(c.config),
		c.config.KafkaOrderDetailTopic,
		c.config.KafkaConsumerGroup,
		c.CreateCreateOrderDetailsCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetResponsePendingOrdersQueryHandler(),
		c.users,
		c.dispatcher,
		c.logger,
	)
}

func (c *CompositionRoot) CloseDispatcher() error {
	return c.dispatcher.Close()
}

func kafkaBrokers(config Config) []string {
	return strings.Split(config.KafkaHost, ",")
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
