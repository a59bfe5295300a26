package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/fundlink/backoffice/internal/pkg/config"
	"github.com/fundlink/backoffice/internal/pkg/database"
	"github.com/fundlink/backoffice/internal/pkg/health"
	pkghttp "github.com/fundlink/backoffice/internal/pkg/http"
	"github.com/fundlink/backoffice/internal/pkg/logger"
	nsqpkg "github.com/fundlink/backoffice/internal/pkg/nsq"
	"github.com/fundlink/backoffice/services/transactions"

	customerHandler "github.com/fundlink/backoffice/services/customers/handler"
	customerHTTP "github.com/fundlink/backoffice/services/customers/handler/http"
	customerRepo "github.com/fundlink/backoffice/services/customers/repository"
	customerUsecase "github.com/fundlink/backoffice/services/customers/usecase"
	fundHandler "github.com/fundlink/backoffice/services/funds/handler"
	fundHTTP "github.com/fundlink/backoffice/services/funds/handler/http"
	fundRepo "github.com/fundlink/backoffice/services/funds/repository"
	fundUsecase "github.com/fundlink/backoffice/services/funds/usecase"
	linkageHandler "github.com/fundlink/backoffice/services/linkages/handler"
	linkageHTTP "github.com/fundlink/backoffice/services/linkages/handler/http"
	linkageRepo "github.com/fundlink/backoffice/services/linkages/repository"
	linkageUsecase "github.com/fundlink/backoffice/services/linkages/usecase"
	notificationGateway "github.com/fundlink/backoffice/services/notifications/gateway"
	notificationHandler "github.com/fundlink/backoffice/services/notifications/handler"
	notificationHTTP "github.com/fundlink/backoffice/services/notifications/handler/http"
	transactionGateway "github.com/fundlink/backoffice/services/transactions/gateway"
	transactionHandler "github.com/fundlink/backoffice/services/transactions/handler"
	transactionHTTP "github.com/fundlink/backoffice/services/transactions/handler/http"
	transactionRepo "github.com/fundlink/backoffice/services/transactions/repository"
	transactionUsecase "github.com/fundlink/backoffice/services/transactions/usecase"
)

func main() {
	appName := "fundlink-backoffice"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL for the transaction audit log
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(migrateCtx, postgresClient.GetDB()); err != nil {
		logger.Fatal("Failed to run database migrations", logger.Err(err))
	}

	// Initialize Redis for the fund, customer and linkage stores
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer when event publication is enabled
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
	}

	// Notification provider client
	providerClient := pkghttp.NewClient(pkghttp.Config{
		BaseURL: configs.Notification.ProviderURL,
		APIKey:  configs.Notification.APIKey,
		Timeout: time.Duration(configs.Notification.TimeoutSeconds) * time.Second,
	})

	// Repositories
	funds := fundRepo.NewFundRepository(redisClient)
	customers := customerRepo.NewCustomerRepository(redisClient)
	linkages := linkageRepo.NewLinkageRepository(redisClient)
	txs := transactionRepo.NewTransactionRepo(configs, postgresClient)

	// Gateways
	notifier := notificationGateway.NewProviderGW(providerClient)
	var txGW transactions.TransactionGW
	if producer != nil {
		txGW = transactionGateway.NewTransactionGW(configs, producer)
	}

	// Use cases
	fundUC := fundUsecase.NewFundUC(funds)
	customerUC := customerUsecase.NewCustomerUC(customers)
	linkageUC := linkageUsecase.NewLinkageUC(linkages)
	transactionUC := transactionUsecase.NewTransactionUC(
		configs, txs, funds, customers, linkages, notifier, txGW)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Register health endpoints
	healthService := health.NewService(appName)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("notification_provider", health.NewProviderHealthChecker(providerClient))
	healthService.RegisterHealthEndpoints(e)

	// Register service routes
	fundHandler.NewHandler(fundHTTP.NewFundHandler(fundUC)).RegisterRoutes(e)
	customerHandler.NewHandler(customerHTTP.NewCustomerHandler(customerUC)).RegisterRoutes(e)
	linkageHandler.NewHandler(linkageHTTP.NewLinkageHandler(linkageUC)).RegisterRoutes(e)
	notificationHandler.NewHandler(notificationHTTP.NewNotificationHandler(notifier)).RegisterRoutes(e)
	transactionHandler.NewHandler(transactionHTTP.NewTransactionHandler(transactionUC)).RegisterRoutes(e)

	// Start server
	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	logger.Info("Starting server", logger.String("address", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("Server stopped", logger.Err(err))
	}
}
