package application

import (
	"context"
	"time"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/shared/saga"
	"github.com/pkg/errors"
)

// GetCheckoutLogQuery represents the query for a checkout audit trail
type GetCheckoutLogQuery struct {
	OrderID string `json:"order_id"`
}

// CheckoutLogEntry is one recorded saga or step transition
type CheckoutLogEntry struct {
	Subject   string    `json:"subject"`
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

// GetCheckoutLogResponse represents the audit trail of one checkout
type GetCheckoutLogResponse struct {
	OrderID string             `json:"order_id"`
	Entries []CheckoutLogEntry `json:"entries"`
}

// GetCheckoutLog use case returns the saga audit trail for an order
type GetCheckoutLog struct {
	sagaLog saga.Log
}

// NewGetCheckoutLog creates a new GetCheckoutLog use case
func NewGetCheckoutLog(sagaLog saga.Log) *GetCheckoutLog {
	return &GetCheckoutLog{sagaLog: sagaLog}
}

// Execute fetches the audit trail
func (uc *GetCheckoutLog) Execute(ctx context.Context, query *GetCheckoutLogQuery) (*GetCheckoutLogResponse, error) {
	orderID, err := models.NewID(query.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order ID")
	}

	entries, err := uc.sagaLog.FindBySagaID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read saga log")
	}

	out := make([]CheckoutLogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, CheckoutLogEntry{
			Subject:   e.Subject,
			State:     e.State,
			Timestamp: e.Timestamp,
		})
	}

	return &GetCheckoutLogResponse{
		OrderID: orderID.String(),
		Entries: out,
	}, nil
}
