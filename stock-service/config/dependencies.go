package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	sharedinfra "github.com/philippedeb/order-system/shared/infrastructure"
	"github.com/philippedeb/order-system/shared/telemetry"
	"github.com/philippedeb/order-system/stock-service/application"
	"github.com/philippedeb/order-system/stock-service/handlers"
	"github.com/philippedeb/order-system/stock-service/infrastructure"
)

// Dependencies wires the stock service
type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	ItemRepository *infrastructure.PostgresItemRepository

	// Use Cases
	CreateItem    *application.CreateItem
	FindItem      *application.FindItem
	AddStock      *application.AddStock
	SubtractStock *application.SubtractStock

	// HTTP Handlers
	StockHandlers *handlers.StockHandlers

	// Messaging
	AdjustmentHandler    *application.StockAdjustmentHandler
	AdjustmentSubscriber *sharedinfra.SQSSubscriber

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

// BuildDependencies constructs and wires all stock service dependencies
func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	if config.Telemetry.Enabled {
		telConfig := telemetry.StockServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
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

	deps.ItemRepository = infrastructure.NewPostgresItemRepository(db)

	deps.CreateItem = application.NewCreateItem(deps.ItemRepository)
	deps.FindItem = application.NewFindItem(deps.ItemRepository)
	deps.AddStock = application.NewAddStock(deps.ItemRepository)
	deps.SubtractStock = application.NewSubtractStock(deps.ItemRepository)

	deps.StockHandlers = handlers.NewStockHandlers(
		deps.CreateItem,
		deps.FindItem,
		deps.AddStock,
		deps.SubtractStock,
	)

	deps.AdjustmentHandler = application.NewStockAdjustmentHandler(deps.AddStock, deps.SubtractStock)
	if config.AWS.AdjustmentQueueURL != "" {
		subscriber, err := sharedinfra.NewSQSSubscriber(ctx, config.AWS.AdjustmentQueueURL)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
		}
		deps.AdjustmentSubscriber = subscriber
	}

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.AdjustmentSubscriber != nil {
		if err := d.AdjustmentSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close SQS subscriber: %w", err))
		}
	}
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
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
