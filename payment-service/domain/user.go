package domain

import (
	"context"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOrderNotPaid      = errors.New("order was not paid by this user")
)

// User is a payment account. Credit is in minor currency units.
// PaidOrders records which orders were debited against this account
// and is the idempotency key for debits and refunds.
type User struct {
	ID         models.ID   `json:"id"`
	Credit     int64       `json:"credit"`
	PaidOrders []models.ID `json:"paid_orders"`
	models.Timestamps
}

// CreateUser creates a new user with zero credit
func CreateUser() *User {
	return &User{
		ID:         models.GenerateUUID(),
		Credit:     0,
		PaidOrders: []models.ID{},
		Timestamps: models.NewTimestamps(),
	}
}

// HasPaid reports whether the order was debited against this user
func (u *User) HasPaid(orderID models.ID) bool {
	for _, paid := range u.PaidOrders {
		if paid == orderID {
			return true
		}
	}
	return false
}

// UserRepository persists payment accounts. Debit and Refund are
// conditional and idempotent per (user, order) pair: a repeated Debit
// for an already-paid order succeeds without charging again, and a
// Refund only restores credit when the order is actually recorded as
// paid. Both checks must be atomic with the balance change.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id models.ID) (*User, error)
	AddFunds(ctx context.Context, id models.ID, amount int64) error

	// Debit returns false when the balance cannot cover the amount.
	Debit(ctx context.Context, userID, orderID models.ID, amount int64) (bool, error)

	// Refund returns false when the order was not paid by this user.
	Refund(ctx context.Context, userID, orderID models.ID, amount int64) (bool, error)
}
