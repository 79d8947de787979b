package application

import (
	"context"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/stock-service/domain"
	"github.com/pkg/errors"
)

// FindItemQuery represents the query to look up an item
type FindItemQuery struct {
	ItemID string `json:"item_id"`
}

// FindItemResponse carries the item's price and current stock level
type FindItemResponse struct {
	ID    string `json:"id"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

// FindItem use case looks up an item by ID
type FindItem struct {
	itemRepository domain.ItemRepository
}

// NewFindItem creates a new FindItem use case
func NewFindItem(itemRepository domain.ItemRepository) *FindItem {
	return &FindItem{itemRepository: itemRepository}
}

// Execute finds the item
func (uc *FindItem) Execute(ctx context.Context, query *FindItemQuery) (*FindItemResponse, error) {
	itemID, err := models.NewID(query.ItemID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid item ID")
	}

	item, err := uc.itemRepository.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return &FindItemResponse{
		ID:    item.ID.String(),
		Price: item.Price,
		Stock: item.Stock,
	}, nil
}
