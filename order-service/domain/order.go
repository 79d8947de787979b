package domain

import (
	"context"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderAlreadyPaid = errors.New("order is already paid")
	ErrItemNotFound     = errors.New("item not found")
)

// Order aggregate root. Items is the set of item IDs in the order; the
// checkout saga reserves one unit of stock per entry.
type Order struct {
	ID         models.ID   `json:"id"`
	UserID     models.ID   `json:"user_id"`
	Items      []models.ID `json:"items"`
	Paid       bool        `json:"paid"`
	Timestamps models.Timestamps
}

// CreateOrder factory method
func CreateOrder(userID models.ID) *Order {
	return &Order{
		ID:         models.GenerateUUID(),
		UserID:     userID,
		Items:      []models.ID{},
		Paid:       false,
		Timestamps: models.NewTimestamps(),
	}
}

// OrderRepository persists orders
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, orderID models.ID) (*Order, error)
	AddItem(ctx context.Context, orderID, itemID models.ID) error
	RemoveItem(ctx context.Context, orderID, itemID models.ID) error
	Remove(ctx context.Context, orderID models.ID) error
	MarkPaid(ctx context.Context, orderID models.ID) error
}

// Item is the stock service's view of an item, read at checkout build
// time. The price is not re-validated at execution time.
type Item struct {
	ID    models.ID `json:"id"`
	Price int64     `json:"price"`
	Stock int64     `json:"stock"`
}

// StockGateway is the remote contract of the stock service. Decrement
// and increment return false when the stock service rejected the call
// (insufficient stock); a non-nil error is a transport failure.
type StockGateway interface {
	FindItem(ctx context.Context, itemID models.ID) (*Item, error)
	DecrementStock(ctx context.Context, itemID models.ID, amount int64) (bool, error)
	IncrementStock(ctx context.Context, itemID models.ID, amount int64) (bool, error)
}

// PaymentGateway is the remote contract of the payment service. Debit
// and credit are idempotent per (userID, orderID): repeating a debit for
// an already-paid order must not double-charge.
type PaymentGateway interface {
	DebitUser(ctx context.Context, userID, orderID models.ID, amount int64) (bool, error)
	CreditUser(ctx context.Context, userID, orderID models.ID, amount int64) (bool, error)
}
