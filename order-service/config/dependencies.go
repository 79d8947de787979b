package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/philippedeb/order-system/order-service/application"
	"github.com/philippedeb/order-system/order-service/handlers"
	"github.com/philippedeb/order-system/order-service/infrastructure"
	sharedinfra "github.com/philippedeb/order-system/shared/infrastructure"
	"github.com/philippedeb/order-system/shared/sagalog"
	"github.com/philippedeb/order-system/shared/telemetry"
	"github.com/redis/go-redis/v9"
)

// Dependencies wires the order service
type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Saga log backend
	Redis *redis.Client

	// Repositories and gateways
	OrderRepository *infrastructure.PostgresOrderRepository
	StockGateway    *infrastructure.HTTPStockGateway
	PaymentGateway  *infrastructure.HTTPPaymentGateway
	SagaLog         *sagalog.RedisLog

	// Use Cases
	CreateOrder    *application.CreateOrder
	FindOrder      *application.FindOrder
	ManageItems    *application.ManageItems
	Checkout       *application.Checkout
	GetCheckoutLog *application.GetCheckoutLog

	// HTTP Handlers
	OrderHandlers *handlers.OrderHandlers

	// Infrastructure
	EventPublisher *sharedinfra.SNSPublisher

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

// BuildDependencies constructs and wires all order service dependencies
func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	if config.Telemetry.Enabled {
		telConfig := telemetry.OrderServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.Init(ctx, telConfig)
		if err != nil {
			log.Printf("Failed to initialize telemetry: %v", err)
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	deps.Redis = redisClient

	eventPublisher, err := sharedinfra.NewSNSPublisher(ctx, config.AWS.SNSTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	deps.OrderRepository = infrastructure.NewPostgresOrderRepository(db)
	deps.StockGateway = infrastructure.NewHTTPStockGateway(config.Services.StockURL)
	deps.PaymentGateway = infrastructure.NewHTTPPaymentGateway(config.Services.PaymentURL)
	deps.SagaLog = sagalog.NewRedisLog(redisClient)

	deps.CreateOrder = application.NewCreateOrder(deps.OrderRepository)
	deps.FindOrder = application.NewFindOrder(deps.OrderRepository, deps.StockGateway)
	deps.ManageItems = application.NewManageItems(deps.OrderRepository)
	deps.Checkout = application.NewCheckout(
		deps.OrderRepository,
		deps.StockGateway,
		deps.PaymentGateway,
		deps.SagaLog,
		deps.EventPublisher,
	)
	deps.GetCheckoutLog = application.NewGetCheckoutLog(deps.SagaLog)

	deps.OrderHandlers = handlers.NewOrderHandlers(
		deps.CreateOrder,
		deps.FindOrder,
		deps.ManageItems,
		deps.Checkout,
		deps.GetCheckoutLog,
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}
	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}
	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
