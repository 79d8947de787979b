package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/philippedeb/order-system/shared/events"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/shared/saga"
	"github.com/philippedeb/order-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CheckoutCommand represents the command to check out an order
type CheckoutCommand struct {
	OrderID string `json:"order_id"`
}

// CheckoutResponse represents the checkout outcome. On failure,
// StepStatuses maps each step name to its terminal status so callers
// can render which step failed or failed to compensate.
type CheckoutResponse struct {
	Success      bool              `json:"success"`
	OrderID      string            `json:"order_id"`
	TotalCost    int64             `json:"total_cost"`
	StepStatuses map[string]string `json:"step_statuses,omitempty"`

	// CompensationFailed marks a higher-severity failure: a
	// compensation itself failed and downstream state is inconsistent.
	CompensationFailed bool `json:"compensation_failed,omitempty"`

	// AuditDegraded reports that the saga log may be incomplete.
	AuditDegraded bool `json:"audit_degraded,omitempty"`
}

// CheckoutEventData is the payload of checkout lifecycle events
type CheckoutEventData struct {
	OrderID      string            `json:"order_id"`
	UserID       string            `json:"user_id"`
	TotalCost    int64             `json:"total_cost"`
	StepStatuses map[string]string `json:"step_statuses,omitempty"`
}

// Checkout use case translates an order into a saga (one stock
// decrement step per item, one payment step last) and runs it. Prices
// are read once at build time; a price change between build and
// execution is not detected.
type Checkout struct {
	orderRepository domain.OrderRepository
	stockGateway    domain.StockGateway
	paymentGateway  domain.PaymentGateway
	sagaLog         saga.Log
	eventPublisher  events.Publisher
}

// NewCheckout creates a new Checkout use case
func NewCheckout(
	orderRepository domain.OrderRepository,
	stockGateway domain.StockGateway,
	paymentGateway domain.PaymentGateway,
	sagaLog saga.Log,
	eventPublisher events.Publisher,
) *Checkout {
	return &Checkout{
		orderRepository: orderRepository,
		stockGateway:    stockGateway,
		paymentGateway:  paymentGateway,
		sagaLog:         sagaLog,
		eventPublisher:  eventPublisher,
	}
}

// Execute checks out the order
func (uc *Checkout) Execute(ctx context.Context, cmd *CheckoutCommand) (*CheckoutResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "checkout",
		trace.WithAttributes(attribute.String("order_id", cmd.OrderID)),
	)
	defer span.End()

	status := "error"
	defer func() {
		duration := time.Since(start)
		telemetry.RecordCounter(ctx, "checkouts_total", "Total checkout attempts", 1,
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "checkout_duration_seconds", "Checkout duration", duration.Seconds(),
			attribute.String("status", status),
		)
	}()

	orderID, err := models.NewID(cmd.OrderID)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "invalid order ID")
	}

	order, err := uc.orderRepository.FindByID(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if order.Paid {
		return nil, domain.ErrOrderAlreadyPaid
	}

	transaction, totalCost, err := uc.buildSaga(ctx, order)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.String("user_id", order.UserID.String()),
		attribute.Int64("total_cost", totalCost),
		attribute.Int("items", len(order.Items)),
	)

	result, err := transaction.Execute(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "saga execution failed")
	}

	if result.Status == saga.StatusSucceeded {
		if err := uc.orderRepository.MarkPaid(ctx, orderID); err != nil {
			span.RecordError(err)
			return nil, errors.Wrap(err, "checkout succeeded but order could not be marked paid")
		}
		status = "success"
		uc.publishOutcome(ctx, order, totalCost, result)
		return &CheckoutResponse{
			Success:       true,
			OrderID:       orderID.String(),
			TotalCost:     totalCost,
			AuditDegraded: result.LogDegraded,
		}, nil
	}

	if result.CompensationFailed {
		// Stock or credit is actually left inconsistent here; this is
		// not retried and needs operator attention.
		log.Printf("ERROR: checkout saga %s has failed compensations: %v", orderID, result.StepStatuses)
	}
	status = "failed"
	uc.publishOutcome(ctx, order, totalCost, result)

	return &CheckoutResponse{
		Success:            false,
		OrderID:            orderID.String(),
		TotalCost:          totalCost,
		StepStatuses:       stepStatusStrings(result.StepStatuses),
		CompensationFailed: result.CompensationFailed,
		AuditDegraded:      result.LogDegraded,
	}, nil
}

// buildSaga prices the order and populates the saga: one concurrent
// phase with all stock decrements, then the payment step. Payment is
// declared last so it is only attempted once every reservation
// succeeded.
func (uc *Checkout) buildSaga(ctx context.Context, order *domain.Order) (*saga.Saga, int64, error) {
	if len(order.Items) == 0 {
		return nil, 0, errors.New("order has no items")
	}

	var totalCost int64
	stockSteps := make([]*saga.Step, 0, len(order.Items))
	for _, itemID := range order.Items {
		item, err := uc.stockGateway.FindItem(ctx, itemID)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "failed to price item %s", itemID)
		}
		totalCost += item.Price

		itemID := itemID
		step, err := saga.NewStep(
			fmt.Sprintf("Decrease %s", itemID),
			func(ctx context.Context) (bool, error) {
				return uc.stockGateway.DecrementStock(ctx, itemID, 1)
			},
			func(ctx context.Context) (bool, error) {
				return uc.stockGateway.IncrementStock(ctx, itemID, 1)
			},
		)
		if err != nil {
			return nil, 0, err
		}
		stockSteps = append(stockSteps, step)
	}

	transaction := saga.New(order.ID, uc.sagaLog)
	if err := transaction.AddPhase(stockSteps...); err != nil {
		return nil, 0, err
	}

	userID, orderID, amount := order.UserID, order.ID, totalCost
	err := transaction.AddStep(
		fmt.Sprintf("Payment user %s: %d", userID, amount),
		func(ctx context.Context) (bool, error) {
			return uc.paymentGateway.DebitUser(ctx, userID, orderID, amount)
		},
		func(ctx context.Context) (bool, error) {
			return uc.paymentGateway.CreditUser(ctx, userID, orderID, amount)
		},
	)
	if err != nil {
		return nil, 0, err
	}

	return transaction, totalCost, nil
}

func (uc *Checkout) publishOutcome(ctx context.Context, order *domain.Order, totalCost int64, result *saga.Result) {
	topic := events.OrderCheckoutFailedEvent
	data := CheckoutEventData{
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		TotalCost: totalCost,
	}
	if result.Status == saga.StatusSucceeded {
		topic = events.OrderCheckoutSucceededEvent
	} else {
		data.StepStatuses = stepStatusStrings(result.StepStatuses)
	}

	event := events.NewEvent(order.ID, topic, data).WithCorrelationID(order.ID)
	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		log.Printf("failed to publish %s for order %s: %v", topic, order.ID, err)
	}
}

func stepStatusStrings(statuses map[string]saga.StepStatus) map[string]string {
	out := make(map[string]string, len(statuses))
	for name, s := range statuses {
		out[name] = string(s)
	}
	return out
}
