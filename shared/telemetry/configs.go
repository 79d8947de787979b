package telemetry

// Predefined service configurations
var (
	// OrderServiceConfig is the telemetry configuration for the order service
	OrderServiceConfig = Config{
		ServiceName:    "order-service",
		ServiceVersion: "1.0.0",
	}

	// StockServiceConfig is the telemetry configuration for the stock service
	StockServiceConfig = Config{
		ServiceName:    "stock-service",
		ServiceVersion: "1.0.0",
	}

	// PaymentServiceConfig is the telemetry configuration for the payment service
	PaymentServiceConfig = Config{
		ServiceName:    "payment-service",
		ServiceVersion: "1.0.0",
	}
)
