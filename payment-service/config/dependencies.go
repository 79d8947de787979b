package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/philippedeb/order-system/payment-service/application"
	"github.com/philippedeb/order-system/payment-service/handlers"
	"github.com/philippedeb/order-system/payment-service/infrastructure"
	sharedinfra "github.com/philippedeb/order-system/shared/infrastructure"
	"github.com/philippedeb/order-system/shared/telemetry"
)

// Dependencies wires the payment service
type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	UserRepository *infrastructure.PostgresUserRepository

	// Use Cases
	ManageUser     *application.ManageUser
	ProcessPayment *application.ProcessPayment

	// HTTP Handlers
	PaymentHandlers *handlers.PaymentHandlers

	// Infrastructure
	EventPublisher *sharedinfra.SNSPublisher

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

// BuildDependencies constructs and wires all payment service dependencies
func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	if config.Telemetry.Enabled {
		telConfig := telemetry.PaymentServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
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

	eventPublisher, err := sharedinfra.NewSNSPublisher(ctx, config.AWS.SNSTopicArn)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	deps.UserRepository = infrastructure.NewPostgresUserRepository(db)

	deps.ManageUser = application.NewManageUser(deps.UserRepository)
	deps.ProcessPayment = application.NewProcessPayment(deps.UserRepository, deps.EventPublisher)

	deps.PaymentHandlers = handlers.NewPaymentHandlers(deps.ManageUser, deps.ProcessPayment)

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
