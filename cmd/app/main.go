package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"oms/cmd"
	httpserver "oms/internal/adapters/in/http"
	"oms/internal/adapters/out/postgres/campaignrepo"
	"oms/internal/adapters/out/postgres/orderrepo"
	"oms/internal/adapters/out/postgres/tariffrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if err := app.CloseDispatcher(); err != nil {
			logger.Error("close event dispatcher", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	projection := app.CreateProjection()
	projection.Start(ctx)
	defer func() {
		if err := projection.Stop(); err != nil {
			logger.Error("stop event projection", slog.Any("error", err))
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:     goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaEventsTopic:       goDotEnvVariable("KAFKA_EVENTS_TOPIC"),
		KafkaOrderDetailTopic:  goDotEnvVariable("KAFKA_ORDER_DETAIL_TOPIC"),
		DocumentServiceHost:    goDotEnvVariable("DOCUMENT_SERVICE_HOST"),
		TranslationServiceHost: goDotEnvVariable("TRANSLATION_SERVICE_HOST"),
		UserServiceHost:        goDotEnvVariable("USER_SERVICE_HOST"),
		CharsPerDay:            goDotEnvIntVariable("CHARS_PER_DAY"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
		&orderrepo.TranslationOperationDTO{},
		&campaignrepo.CampaignItemDTO{},
		&tariffrepo.PriceListDTO{},
		&tariffrepo.TerminologyPriceRateDTO{},
		&tariffrepo.CompanyPriceOfferDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAcceptOfferCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateDeactivateOrderCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateGetResponsePendingOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		<-ctx.Done()
		if err := e.Shutdown(context.Background()); err != nil {
			e.Logger.Error(err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
		e.Logger.Fatal(err)
	}
}
