package application

import (
	"context"

	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

// FindOrderQuery represents the query to find an order
type FindOrderQuery struct {
	OrderID string `json:"order_id"`
}

// FindOrderResponse represents the order with its computed total cost
type FindOrderResponse struct {
	OrderID   string   `json:"order_id"`
	UserID    string   `json:"user_id"`
	Items     []string `json:"items"`
	Paid      bool     `json:"paid"`
	TotalCost int64    `json:"total_cost"`
}

// FindOrder use case returns an order with the current total cost of
// its items, priced by the stock service at query time.
type FindOrder struct {
	orderRepository domain.OrderRepository
	stockGateway    domain.StockGateway
}

// NewFindOrder creates a new FindOrder use case
func NewFindOrder(orderRepository domain.OrderRepository, stockGateway domain.StockGateway) *FindOrder {
	return &FindOrder{
		orderRepository: orderRepository,
		stockGateway:    stockGateway,
	}
}

// Execute finds the order
func (uc *FindOrder) Execute(ctx context.Context, query *FindOrderQuery) (*FindOrderResponse, error) {
	orderID, err := models.NewID(query.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order ID")
	}

	order, err := uc.orderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var totalCost int64
	items := make([]string, 0, len(order.Items))
	for _, itemID := range order.Items {
		item, err := uc.stockGateway.FindItem(ctx, itemID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to price item %s", itemID)
		}
		totalCost += item.Price
		items = append(items, itemID.String())
	}

	return &FindOrderResponse{
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		Items:     items,
		Paid:      order.Paid,
		TotalCost: totalCost,
	}, nil
}
