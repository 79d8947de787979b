package domain

import (
	"context"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Item is a catalog entry with its current stock level. Price is in
// minor currency units.
type Item struct {
	ID    models.ID `json:"id" db:"id"`
	Price int64     `json:"price" db:"price"`
	Stock int64     `json:"stock" db:"stock"`
	models.Timestamps
}

// CreateItem creates a new item with zero stock
func CreateItem(price int64) (*Item, error) {
	if price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	return &Item{
		ID:         models.GenerateUUID(),
		Price:      price,
		Stock:      0,
		Timestamps: models.NewTimestamps(),
	}, nil
}

// ItemRepository persists items. SubtractStock is conditional: it
// only decrements when the current level covers the amount, and
// reports whether it did. This check-and-decrement must be atomic so
// concurrent subtractions cannot oversell.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id models.ID) (*Item, error)
	AddStock(ctx context.Context, id models.ID, amount int64) error
	SubtractStock(ctx context.Context, id models.ID, amount int64) (bool, error)
}
