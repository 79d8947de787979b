package application

import (
	"context"

	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

// ManageItems use case adds and removes order line items and deletes
// whole orders.
type ManageItems struct {
	orderRepository domain.OrderRepository
}

// NewManageItems creates a new ManageItems use case
func NewManageItems(orderRepository domain.OrderRepository) *ManageItems {
	return &ManageItems{orderRepository: orderRepository}
}

// AddItem adds an item to an order
func (uc *ManageItems) AddItem(ctx context.Context, rawOrderID, rawItemID string) error {
	orderID, itemID, err := parseOrderItemIDs(rawOrderID, rawItemID)
	if err != nil {
		return err
	}
	return uc.orderRepository.AddItem(ctx, orderID, itemID)
}

// RemoveItem removes an item from an order
func (uc *ManageItems) RemoveItem(ctx context.Context, rawOrderID, rawItemID string) error {
	orderID, itemID, err := parseOrderItemIDs(rawOrderID, rawItemID)
	if err != nil {
		return err
	}
	return uc.orderRepository.RemoveItem(ctx, orderID, itemID)
}

// RemoveOrder deletes an order
func (uc *ManageItems) RemoveOrder(ctx context.Context, rawOrderID string) error {
	orderID, err := models.NewID(rawOrderID)
	if err != nil {
		return errors.Wrap(err, "invalid order ID")
	}
	return uc.orderRepository.Remove(ctx, orderID)
}

func parseOrderItemIDs(rawOrderID, rawItemID string) (models.ID, models.ID, error) {
	orderID, err := models.NewID(rawOrderID)
	if err != nil {
		return "", "", errors.Wrap(err, "invalid order ID")
	}
	itemID, err := models.NewID(rawItemID)
	if err != nil {
		return "", "", errors.Wrap(err, "invalid item ID")
	}
	return orderID, itemID, nil
}
