package application

import (
	"context"
	"log"

	"github.com/philippedeb/order-system/shared/events"
	"github.com/philippedeb/order-system/stock-service/domain"
	"github.com/pkg/errors"
)

// StockAdjustmentRequested is the payload of stock adjustment events.
// A positive amount restocks the item, a negative amount subtracts.
type StockAdjustmentRequested struct {
	ItemID string `json:"item_id"`
	Amount int64  `json:"amount"`
}

// StockAdjustmentHandler consumes stock adjustment events from the
// message bus and applies them through the same use cases the HTTP
// surface uses.
type StockAdjustmentHandler struct {
	addStock      *AddStock
	subtractStock *SubtractStock
}

// NewStockAdjustmentHandler creates a new StockAdjustmentHandler
func NewStockAdjustmentHandler(addStock *AddStock, subtractStock *SubtractStock) *StockAdjustmentHandler {
	return &StockAdjustmentHandler{addStock: addStock, subtractStock: subtractStock}
}

// Handle applies a single adjustment event
func (h *StockAdjustmentHandler) Handle(ctx context.Context, event *events.Event) error {
	if event.Topic != events.StockAdjustmentRequestedEvent {
		return nil
	}

	var payload StockAdjustmentRequested
	if err := event.UnmarshalPayload(&payload); err != nil {
		return errors.Wrap(err, "malformed stock adjustment payload")
	}

	cmd := &AdjustStockCommand{ItemID: payload.ItemID, Amount: payload.Amount}
	var err error
	if payload.Amount >= 0 {
		_, err = h.addStock.Execute(ctx, cmd)
	} else {
		cmd.Amount = -payload.Amount
		_, err = h.subtractStock.Execute(ctx, cmd)
	}
	if err != nil {
		// Business rejections are terminal for this message: redelivery
		// can never change the outcome, so report it handled.
		if errors.Is(err, domain.ErrInsufficientStock) ||
			errors.Is(err, domain.ErrItemNotFound) ||
			errors.Is(err, domain.ErrInvalidAmount) {
			log.Printf("stock adjustment for item %s rejected: %v", payload.ItemID, err)
			return nil
		}
		log.Printf("stock adjustment for item %s failed: %v", payload.ItemID, err)
		return err
	}
	return nil
}
