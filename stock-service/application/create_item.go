package application

import (
	"context"

	"github.com/philippedeb/order-system/stock-service/domain"
	"github.com/pkg/errors"
)

// CreateItemCommand represents the command to create a catalog item
type CreateItemCommand struct {
	Price int64 `json:"price"`
}

// CreateItemResponse represents the response after creating an item
type CreateItemResponse struct {
	ItemID string `json:"item_id"`
}

// CreateItem use case adds a new item to the catalog with zero stock
type CreateItem struct {
	itemRepository domain.ItemRepository
}

// NewCreateItem creates a new CreateItem use case
func NewCreateItem(itemRepository domain.ItemRepository) *CreateItem {
	return &CreateItem{itemRepository: itemRepository}
}

// Execute creates the item
func (uc *CreateItem) Execute(ctx context.Context, cmd *CreateItemCommand) (*CreateItemResponse, error) {
	item, err := domain.CreateItem(cmd.Price)
	if err != nil {
		return nil, err
	}

	if err := uc.itemRepository.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	return &CreateItemResponse{ItemID: item.ID.String()}, nil
}
