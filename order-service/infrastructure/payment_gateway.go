package infrastructure

import (
	"context"
	"fmt"
	"net/http"

	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

var _ domain.PaymentGateway = (*HTTPPaymentGateway)(nil)

// HTTPPaymentGateway calls the payment service over HTTP. It is
// stateless and safely shared across concurrent sagas. Debits and
// credits are idempotent on the payment side, keyed (userID, orderID).
type HTTPPaymentGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPaymentGateway creates a payment gateway for the given base URL
func NewHTTPPaymentGateway(baseURL string) *HTTPPaymentGateway {
	return &HTTPPaymentGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultCallTimeout},
	}
}

// DebitUser charges the order total; false means insufficient credit
func (g *HTTPPaymentGateway) DebitUser(ctx context.Context, userID, orderID models.ID, amount int64) (bool, error) {
	return g.post(ctx, fmt.Sprintf("%s/payment/pay/%s/%s/%d", g.baseURL, userID, orderID, amount))
}

// CreditUser refunds the order total; false means no matching payment
func (g *HTTPPaymentGateway) CreditUser(ctx context.Context, userID, orderID models.ID, amount int64) (bool, error) {
	return g.post(ctx, fmt.Sprintf("%s/payment/cancel/%s/%s/%d", g.baseURL, userID, orderID, amount))
}

func (g *HTTPPaymentGateway) post(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return false, errors.Wrap(err, "failed to build request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "payment service unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, errors.Errorf("payment service returned status %d", resp.StatusCode)
	}
}
