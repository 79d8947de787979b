package application

import (
	"context"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/shared/telemetry"
	"github.com/philippedeb/order-system/stock-service/domain"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AdjustStockCommand represents a stock level change for one item
type AdjustStockCommand struct {
	ItemID string `json:"item_id"`
	Amount int64  `json:"amount"`
}

// AdjustStockResponse represents the stock level after the adjustment
type AdjustStockResponse struct {
	ItemID string `json:"item_id"`
	Stock  int64  `json:"stock"`
}

// AddStock use case increases an item's stock level. It is also the
// rollback path for a failed checkout, so it must accept amounts that
// were previously subtracted.
type AddStock struct {
	itemRepository domain.ItemRepository
}

// NewAddStock creates a new AddStock use case
func NewAddStock(itemRepository domain.ItemRepository) *AddStock {
	return &AddStock{itemRepository: itemRepository}
}

// Execute adds stock to the item
func (uc *AddStock) Execute(ctx context.Context, cmd *AdjustStockCommand) (*AdjustStockResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "add_stock",
		trace.WithAttributes(attribute.String("item_id", cmd.ItemID), attribute.Int64("amount", cmd.Amount)),
	)
	defer span.End()

	itemID, err := models.NewID(cmd.ItemID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid item ID")
	}
	if cmd.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if err := uc.itemRepository.AddStock(ctx, itemID, cmd.Amount); err != nil {
		span.RecordError(err)
		return nil, err
	}
	telemetry.RecordCounter(ctx, "stock_adjustments_total", "Total stock adjustments", 1,
		attribute.String("direction", "add"),
	)

	item, err := uc.itemRepository.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &AdjustStockResponse{ItemID: item.ID.String(), Stock: item.Stock}, nil
}

// SubtractStock use case decrements an item's stock level. The
// decrement is conditional: when the current level does not cover the
// amount it returns ErrInsufficientStock and leaves the level
// untouched.
type SubtractStock struct {
	itemRepository domain.ItemRepository
}

// NewSubtractStock creates a new SubtractStock use case
func NewSubtractStock(itemRepository domain.ItemRepository) *SubtractStock {
	return &SubtractStock{itemRepository: itemRepository}
}

// Execute subtracts stock from the item
func (uc *SubtractStock) Execute(ctx context.Context, cmd *AdjustStockCommand) (*AdjustStockResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "subtract_stock",
		trace.WithAttributes(attribute.String("item_id", cmd.ItemID), attribute.Int64("amount", cmd.Amount)),
	)
	defer span.End()

	itemID, err := models.NewID(cmd.ItemID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid item ID")
	}
	if cmd.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	ok, err := uc.itemRepository.SubtractStock(ctx, itemID, cmd.Amount)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !ok {
		telemetry.RecordCounter(ctx, "stock_adjustments_total", "Total stock adjustments", 1,
			attribute.String("direction", "subtract_rejected"),
		)
		return nil, domain.ErrInsufficientStock
	}
	telemetry.RecordCounter(ctx, "stock_adjustments_total", "Total stock adjustments", 1,
		attribute.String("direction", "subtract"),
	)

	item, err := uc.itemRepository.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &AdjustStockResponse{ItemID: item.ID.String(), Stock: item.Stock}, nil
}
