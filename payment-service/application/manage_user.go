package application

import (
	"context"

	"github.com/philippedeb/order-system/payment-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

// CreateUserResponse represents the response after creating a user
type CreateUserResponse struct {
	UserID string `json:"user_id"`
}

// FindUserResponse carries the user's balance and payment history
type FindUserResponse struct {
	UserID     string   `json:"user_id"`
	Credit     int64    `json:"credit"`
	PaidOrders []string `json:"paid_orders"`
}

// ManageUser groups the account lifecycle operations
type ManageUser struct {
	userRepository domain.UserRepository
}

// NewManageUser creates a new ManageUser use case
func NewManageUser(userRepository domain.UserRepository) *ManageUser {
	return &ManageUser{userRepository: userRepository}
}

// CreateUser creates a new payment account
func (uc *ManageUser) CreateUser(ctx context.Context) (*CreateUserResponse, error) {
	user := domain.CreateUser()
	if err := uc.userRepository.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	return &CreateUserResponse{UserID: user.ID.String()}, nil
}

// FindUser looks up a payment account by ID
func (uc *ManageUser) FindUser(ctx context.Context, rawUserID string) (*FindUserResponse, error) {
	userID, err := models.NewID(rawUserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user ID")
	}

	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	paid := make([]string, 0, len(user.PaidOrders))
	for _, orderID := range user.PaidOrders {
		paid = append(paid, orderID.String())
	}
	return &FindUserResponse{
		UserID:     user.ID.String(),
		Credit:     user.Credit,
		PaidOrders: paid,
	}, nil
}

// AddFunds credits the account
func (uc *ManageUser) AddFunds(ctx context.Context, rawUserID string, amount int64) error {
	userID, err := models.NewID(rawUserID)
	if err != nil {
		return errors.Wrap(err, "invalid user ID")
	}
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	return uc.userRepository.AddFunds(ctx, userID, amount)
}
