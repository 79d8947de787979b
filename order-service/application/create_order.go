package application

import (
	"context"

	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

// CreateOrderCommand represents the command to create an order
type CreateOrderCommand struct {
	UserID string `json:"user_id"`
}

// CreateOrderResponse represents the response after creating an order
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// CreateOrder use case creates an empty order for a user
type CreateOrder struct {
	orderRepository domain.OrderRepository
}

// NewCreateOrder creates a new CreateOrder use case
func NewCreateOrder(orderRepository domain.OrderRepository) *CreateOrder {
	return &CreateOrder{orderRepository: orderRepository}
}

// Execute creates the order
func (uc *CreateOrder) Execute(ctx context.Context, cmd *CreateOrderCommand) (*CreateOrderResponse, error) {
	userID, err := models.NewID(cmd.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user ID")
	}

	order := domain.CreateOrder(userID)
	if err := uc.orderRepository.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	return &CreateOrderResponse{OrderID: order.ID.String()}, nil
}
