package application

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/philippedeb/order-system/order-service/mocks"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/shared/saga"
	"github.com/philippedeb/order-system/shared/sagalog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	orderID = models.ID("550e8400-e29b-41d4-a716-446655440000")
	userID  = models.ID("550e8400-e29b-41d4-a716-446655440001")
	item1   = models.ID("550e8400-e29b-41d4-a716-446655440011")
	item2   = models.ID("550e8400-e29b-41d4-a716-446655440012")
)

type checkoutFixture struct {
	orders   *mocks.MockOrderRepository
	stock    *mocks.MockStockGateway
	payments *mocks.MockPaymentGateway
	pub      *mocks.MockPublisher
	sagaLog  *sagalog.RedisLog
	checkout *Checkout
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := sagalog.NewRedisLog(client)

	orders := mocks.NewMockOrderRepository(t)
	stock := mocks.NewMockStockGateway(t)
	payments := mocks.NewMockPaymentGateway(t)
	pub := mocks.NewMockPublisher(t)

	return &checkoutFixture{
		orders:   orders,
		stock:    stock,
		payments: payments,
		pub:      pub,
		sagaLog:  log,
		checkout: NewCheckout(orders, stock, payments, log, pub),
	}
}

func twoItemOrder() *domain.Order {
	return &domain.Order{
		ID:     orderID,
		UserID: userID,
		Items:  []models.ID{item1, item2},
		Paid:   false,
	}
}

// Scenario: both reservations and the payment succeed
func TestCheckout_Execute_Success(t *testing.T) {
	f := newCheckoutFixture(t)

	f.orders.EXPECT().FindByID(mock.Anything, orderID).Return(twoItemOrder(), nil).Once()
	f.stock.EXPECT().FindItem(mock.Anything, item1).Return(&domain.Item{ID: item1, Price: 1000, Stock: 1}, nil).Once()
	f.stock.EXPECT().FindItem(mock.Anything, item2).Return(&domain.Item{ID: item2, Price: 500, Stock: 1}, nil).Once()
	f.stock.EXPECT().DecrementStock(mock.Anything, item1, int64(1)).Return(true, nil).Once()
	f.stock.EXPECT().DecrementStock(mock.Anything, item2, int64(1)).Return(true, nil).Once()
	f.payments.EXPECT().DebitUser(mock.Anything, userID, orderID, int64(1500)).Return(true, nil).Once()
	f.orders.EXPECT().MarkPaid(mock.Anything, orderID).Return(nil).Once()
	f.pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	response, err := f.checkout.Execute(context.Background(), &CheckoutCommand{OrderID: orderID.String()})
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Equal(t, int64(1500), response.TotalCost)
	assert.False(t, response.CompensationFailed)
	assert.False(t, response.AuditDegraded)

	// Log completeness: one entry per executed step transition plus the
	// saga summary, in an order consistent with execution.
	entries, err := f.sagaLog.FindBySagaID(context.Background(), orderID)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, saga.SagaSubject, entries[0].Subject)
	assert.Equal(t, string(saga.StatusSucceeded), entries[0].State)

	succeeded := map[string]bool{}
	for _, e := range entries[1:] {
		if e.State == string(saga.StepSucceeded) {
			succeeded[e.Subject] = true
		}
	}
	assert.Len(t, succeeded, 3)
}

// Scenario: the second reservation is rejected, the first is rolled
// back and payment is never attempted
func TestCheckout_Execute_StockRejectionCompensates(t *testing.T) {
	f := newCheckoutFixture(t)

	f.orders.EXPECT().FindByID(mock.Anything, orderID).Return(twoItemOrder(), nil).Once()
	f.stock.EXPECT().FindItem(mock.Anything, item1).Return(&domain.Item{ID: item1, Price: 1000, Stock: 1}, nil).Once()
	f.stock.EXPECT().FindItem(mock.Anything, item2).Return(&domain.Item{ID: item2, Price: 500, Stock: 0}, nil).Once()
	f.stock.EXPECT().DecrementStock(mock.Anything, item1, int64(1)).Return(true, nil).Once()
	f.stock.EXPECT().DecrementStock(mock.Anything, item2, int64(1)).Return(false, nil).Once()
	f.stock.EXPECT().IncrementStock(mock.Anything, item1, int64(1)).Return(true, nil).Once()
	f.pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	response, err := f.checkout.Execute(context.Background(), &CheckoutCommand{OrderID: orderID.String()})
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.False(t, response.CompensationFailed)
	assert.Equal(t, "Compensated", response.StepStatuses["Decrease "+item1.String()])
	assert.Equal(t, "Failed", response.StepStatuses["Decrease "+item2.String()])
}

// Scenario: reservations succeed but the balance is insufficient, so
// both stock steps are compensated and the saga fails
func TestCheckout_Execute_InsufficientBalanceCompensatesStock(t *testing.T) {
	f := newCheckoutFixture(t)

	f.orders.EXPECT().FindByID(mock.Anything, orderID).Return(twoItemOrder(), nil).Once()
	f.stock.EXPECT().FindItem(mock.Anything, item1).Return(&domain.Item{ID: item1, Price: 1000, Stock: 1}, nil).Once()
	f.stock.EXPECT().FindItem(mock.Anything, item2).Return(&domain.Item{ID: item2, Price: 500, Stock: 1}, nil).Once()
	f.stock.EXPECT().DecrementStock(mock.Anything, item1, int64(1)).Return(true, nil).Once()
	f.stock.EXPECT().DecrementStock(mock.Anything, item2, int64(1)).Return(true, nil).Once()
	f.payments.EXPECT().DebitUser(mock.Anything, userID, orderID, int64(1500)).Return(false, nil).Once()
	f.stock.EXPECT().IncrementStock(mock.Anything, item1, int64(1)).Return(true, nil).Once()
	f.stock.EXPECT().IncrementStock(mock.Anything, item2, int64(1)).Return(true, nil).Once()
	f.pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	response, err := f.checkout.Execute(context.Background(), &CheckoutCommand{OrderID: orderID.String()})
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.False(t, response.CompensationFailed)
	assert.Equal(t, "Compensated", response.StepStatuses["Decrease "+item1.String()])
	assert.Equal(t, "Compensated", response.StepStatuses["Decrease "+item2.String()])

	paymentStep := "Payment user " + userID.String() + ": 1500"
	assert.Equal(t, "Failed", response.StepStatuses[paymentStep])
}

// Scenario: a compensation itself fails, which is surfaced as a
// distinct, higher-severity condition
func TestCheckout_Execute_CompensationFailureIsDistinct(t *testing.T) {
	f := newCheckoutFixture(t)

	f.orders.EXPECT().FindByID(mock.Anything, orderID).Return(twoItemOrder(), nil).Once()
	f.stock.EXPECT().FindItem(mock.Anything, item1).Return(&domain.Item{ID: item1, Price: 1000, Stock: 1}, nil).Once()
	f.stock.EXPECT().FindItem(mock.Anything, item2).Return(&domain.Item{ID: item2, Price: 500, Stock: 0}, nil).Once()
	f.stock.EXPECT().DecrementStock(mock.Anything, item1, int64(1)).Return(true, nil).Once()
	f.stock.EXPECT().DecrementStock(mock.Anything, item2, int64(1)).Return(false, nil).Once()
	f.stock.EXPECT().IncrementStock(mock.Anything, item1, int64(1)).
		Return(false, errors.New("stock service unreachable")).Once()
	f.pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	response, err := f.checkout.Execute(context.Background(), &CheckoutCommand{OrderID: orderID.String()})
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.True(t, response.CompensationFailed)
	assert.Equal(t, "CompensationFailed", response.StepStatuses["Decrease "+item1.String()])
	assert.Equal(t, "Failed", response.StepStatuses["Decrease "+item2.String()])
}

func TestCheckout_Execute_OrderNotFound(t *testing.T) {
	f := newCheckoutFixture(t)

	f.orders.EXPECT().FindByID(mock.Anything, orderID).Return(nil, domain.ErrOrderNotFound).Once()

	_, err := f.checkout.Execute(context.Background(), &CheckoutCommand{OrderID: orderID.String()})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestCheckout_Execute_AlreadyPaid(t *testing.T) {
	f := newCheckoutFixture(t)

	paid := twoItemOrder()
	paid.Paid = true
	f.orders.EXPECT().FindByID(mock.Anything, orderID).Return(paid, nil).Once()

	_, err := f.checkout.Execute(context.Background(), &CheckoutCommand{OrderID: orderID.String()})
	assert.ErrorIs(t, err, domain.ErrOrderAlreadyPaid)
}

func TestCheckout_Execute_EmptyOrder(t *testing.T) {
	f := newCheckoutFixture(t)

	empty := &domain.Order{ID: orderID, UserID: userID, Items: []models.ID{}}
	f.orders.EXPECT().FindByID(mock.Anything, orderID).Return(empty, nil).Once()

	_, err := f.checkout.Execute(context.Background(), &CheckoutCommand{OrderID: orderID.String()})
	assert.Error(t, err)
}
