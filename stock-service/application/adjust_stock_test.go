package application

import (
	"context"
	"testing"

	"github.com/philippedeb/order-system/shared/events"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/stock-service/domain"
	"github.com/philippedeb/order-system/stock-service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var itemID = models.ID("550e8400-e29b-41d4-a716-446655440011")

func newAdjustmentEvent(t *testing.T, payload StockAdjustmentRequested) *events.Event {
	t.Helper()
	return events.NewEvent(itemID, events.StockAdjustmentRequestedEvent, payload)
}

func TestSubtractStock_Execute_Decrements(t *testing.T) {
	repo := mocks.NewMockItemRepository(t)
	repo.EXPECT().SubtractStock(mock.Anything, itemID, int64(2)).Return(true, nil).Once()
	repo.EXPECT().FindByID(mock.Anything, itemID).
		Return(&domain.Item{ID: itemID, Price: 1000, Stock: 3}, nil).Once()

	uc := NewSubtractStock(repo)
	response, err := uc.Execute(context.Background(), &AdjustStockCommand{ItemID: itemID.String(), Amount: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), response.Stock)
}

func TestSubtractStock_Execute_RejectsWhenInsufficient(t *testing.T) {
	repo := mocks.NewMockItemRepository(t)
	repo.EXPECT().SubtractStock(mock.Anything, itemID, int64(5)).Return(false, nil).Once()

	uc := NewSubtractStock(repo)
	_, err := uc.Execute(context.Background(), &AdjustStockCommand{ItemID: itemID.String(), Amount: 5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestSubtractStock_Execute_RejectsNonPositiveAmount(t *testing.T) {
	repo := mocks.NewMockItemRepository(t)

	uc := NewSubtractStock(repo)
	_, err := uc.Execute(context.Background(), &AdjustStockCommand{ItemID: itemID.String(), Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestAddStock_Execute_Increments(t *testing.T) {
	repo := mocks.NewMockItemRepository(t)
	repo.EXPECT().AddStock(mock.Anything, itemID, int64(4)).Return(nil).Once()
	repo.EXPECT().FindByID(mock.Anything, itemID).
		Return(&domain.Item{ID: itemID, Price: 1000, Stock: 4}, nil).Once()

	uc := NewAddStock(repo)
	response, err := uc.Execute(context.Background(), &AdjustStockCommand{ItemID: itemID.String(), Amount: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(4), response.Stock)
}

func TestStockAdjustmentHandler_RoutesByAmountSign(t *testing.T) {
	repo := mocks.NewMockItemRepository(t)
	repo.EXPECT().AddStock(mock.Anything, itemID, int64(3)).Return(nil).Once()
	repo.EXPECT().SubtractStock(mock.Anything, itemID, int64(2)).Return(true, nil).Once()
	repo.EXPECT().FindByID(mock.Anything, itemID).
		Return(&domain.Item{ID: itemID, Price: 1000, Stock: 1}, nil).Twice()

	handler := NewStockAdjustmentHandler(NewAddStock(repo), NewSubtractStock(repo))

	restock := newAdjustmentEvent(t, StockAdjustmentRequested{ItemID: itemID.String(), Amount: 3})
	require.NoError(t, handler.Handle(context.Background(), restock))

	release := newAdjustmentEvent(t, StockAdjustmentRequested{ItemID: itemID.String(), Amount: -2})
	require.NoError(t, handler.Handle(context.Background(), release))
}

// A subtraction the stock level can never satisfy must not keep the
// message in flight: the handler reports it handled so the subscriber
// deletes it instead of redelivering forever.
func TestStockAdjustmentHandler_InsufficientStockIsTerminal(t *testing.T) {
	repo := mocks.NewMockItemRepository(t)
	repo.EXPECT().SubtractStock(mock.Anything, itemID, int64(5)).Return(false, nil).Once()

	handler := NewStockAdjustmentHandler(NewAddStock(repo), NewSubtractStock(repo))

	event := newAdjustmentEvent(t, StockAdjustmentRequested{ItemID: itemID.String(), Amount: -5})
	require.NoError(t, handler.Handle(context.Background(), event))
}

func TestStockAdjustmentHandler_MissingItemIsTerminal(t *testing.T) {
	repo := mocks.NewMockItemRepository(t)
	repo.EXPECT().AddStock(mock.Anything, itemID, int64(3)).Return(domain.ErrItemNotFound).Once()

	handler := NewStockAdjustmentHandler(NewAddStock(repo), NewSubtractStock(repo))

	event := newAdjustmentEvent(t, StockAdjustmentRequested{ItemID: itemID.String(), Amount: 3})
	require.NoError(t, handler.Handle(context.Background(), event))
}

func TestStockAdjustmentHandler_TransportErrorIsRetried(t *testing.T) {
	repo := mocks.NewMockItemRepository(t)
	repo.EXPECT().AddStock(mock.Anything, itemID, int64(3)).
		Return(errors.New("database unavailable")).Once()

	handler := NewStockAdjustmentHandler(NewAddStock(repo), NewSubtractStock(repo))

	event := newAdjustmentEvent(t, StockAdjustmentRequested{ItemID: itemID.String(), Amount: 3})
	require.Error(t, handler.Handle(context.Background(), event))
}

func TestStockAdjustmentHandler_IgnoresOtherTopics(t *testing.T) {
	repo := mocks.NewMockItemRepository(t)
	handler := NewStockAdjustmentHandler(NewAddStock(repo), NewSubtractStock(repo))

	event := newAdjustmentEvent(t, StockAdjustmentRequested{ItemID: itemID.String(), Amount: 3})
	event.Topic = "order.created"

	require.NoError(t, handler.Handle(context.Background(), event))
}
