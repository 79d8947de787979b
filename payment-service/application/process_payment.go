package application

import (
	"context"
	"log"

	"github.com/philippedeb/order-system/payment-service/domain"
	"github.com/philippedeb/order-system/shared/events"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PaymentCommand identifies one (user, order) payment
type PaymentCommand struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
}

// PaymentStatusResponse reports whether the order was paid
type PaymentStatusResponse struct {
	Paid bool `json:"paid"`
}

// PaymentEventData is the payload of payment lifecycle events
type PaymentEventData struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
}

// ProcessPayment handles debits, refunds and status queries. Debits
// are idempotent per (user, order): retrying a payment that already
// went through succeeds without charging twice.
type ProcessPayment struct {
	userRepository domain.UserRepository
	eventPublisher events.Publisher
}

// NewProcessPayment creates a new ProcessPayment use case
func NewProcessPayment(userRepository domain.UserRepository, eventPublisher events.Publisher) *ProcessPayment {
	return &ProcessPayment{userRepository: userRepository, eventPublisher: eventPublisher}
}

// Pay debits the user for the order
func (uc *ProcessPayment) Pay(ctx context.Context, cmd *PaymentCommand) error {
	ctx, span := telemetry.StartSpan(ctx, "pay",
		trace.WithAttributes(
			attribute.String("user_id", cmd.UserID),
			attribute.String("order_id", cmd.OrderID),
			attribute.Int64("amount", cmd.Amount),
		),
	)
	defer span.End()

	userID, orderID, err := parsePaymentIDs(cmd)
	if err != nil {
		return err
	}
	if cmd.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	ok, err := uc.userRepository.Debit(ctx, userID, orderID, cmd.Amount)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !ok {
		telemetry.RecordCounter(ctx, "payments_total", "Total payment attempts", 1,
			attribute.String("outcome", "rejected"),
		)
		return domain.ErrInsufficientFunds
	}
	telemetry.RecordCounter(ctx, "payments_total", "Total payment attempts", 1,
		attribute.String("outcome", "paid"),
	)
	uc.publish(ctx, events.PaymentCompletedEvent, userID, orderID, cmd.Amount)
	return nil
}

// Cancel refunds the order. Refusal to refund an unpaid order keeps
// the refund idempotent: a second cancel finds no paid record.
func (uc *ProcessPayment) Cancel(ctx context.Context, cmd *PaymentCommand) error {
	ctx, span := telemetry.StartSpan(ctx, "cancel",
		trace.WithAttributes(
			attribute.String("user_id", cmd.UserID),
			attribute.String("order_id", cmd.OrderID),
		),
	)
	defer span.End()

	userID, orderID, err := parsePaymentIDs(cmd)
	if err != nil {
		return err
	}
	if cmd.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	ok, err := uc.userRepository.Refund(ctx, userID, orderID, cmd.Amount)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !ok {
		return domain.ErrOrderNotPaid
	}
	telemetry.RecordCounter(ctx, "refunds_total", "Total refunds", 1)
	uc.publish(ctx, events.PaymentCancelledEvent, userID, orderID, cmd.Amount)
	return nil
}

func (uc *ProcessPayment) publish(ctx context.Context, topic events.Topic, userID, orderID models.ID, amount int64) {
	data := PaymentEventData{UserID: userID.String(), OrderID: orderID.String(), Amount: amount}
	event := events.NewEvent(orderID, topic, data).WithCorrelationID(orderID)
	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		log.Printf("failed to publish %s for order %s: %v", topic, orderID, err)
	}
}

// Status reports whether the order was paid by the user
func (uc *ProcessPayment) Status(ctx context.Context, cmd *PaymentCommand) (*PaymentStatusResponse, error) {
	userID, orderID, err := parsePaymentIDs(cmd)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &PaymentStatusResponse{Paid: user.HasPaid(orderID)}, nil
}

func parsePaymentIDs(cmd *PaymentCommand) (models.ID, models.ID, error) {
	userID, err := models.NewID(cmd.UserID)
	if err != nil {
		return "", "", errors.Wrap(err, "invalid user ID")
	}
	orderID, err := models.NewID(cmd.OrderID)
	if err != nil {
		return "", "", errors.Wrap(err, "invalid order ID")
	}
	return userID, orderID, nil
}
