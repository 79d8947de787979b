package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

var _ domain.StockGateway = (*HTTPStockGateway)(nil)

// defaultCallTimeout bounds every remote call so a slow downstream
// surfaces as a transport failure instead of hanging the saga.
const defaultCallTimeout = 5 * time.Second

// HTTPStockGateway calls the stock service over HTTP. It is stateless
// and safely shared across concurrent sagas.
type HTTPStockGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStockGateway creates a stock gateway for the given base URL
func NewHTTPStockGateway(baseURL string) *HTTPStockGateway {
	return &HTTPStockGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultCallTimeout},
	}
}

// FindItem fetches an item's price and stock level
func (g *HTTPStockGateway) FindItem(ctx context.Context, itemID models.ID) (*domain.Item, error) {
	url := fmt.Sprintf("%s/stock/find/%s", g.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "stock service unreachable")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var item domain.Item
		if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
			return nil, errors.Wrap(err, "failed to decode item")
		}
		return &item, nil
	case http.StatusNotFound:
		return nil, domain.ErrItemNotFound
	default:
		return nil, errors.Errorf("stock service returned status %d", resp.StatusCode)
	}
}

// DecrementStock reserves stock; false means insufficient stock
func (g *HTTPStockGateway) DecrementStock(ctx context.Context, itemID models.ID, amount int64) (bool, error) {
	return g.post(ctx, fmt.Sprintf("%s/stock/subtract/%s/%d", g.baseURL, itemID, amount))
}

// IncrementStock releases a reservation
func (g *HTTPStockGateway) IncrementStock(ctx context.Context, itemID models.ID, amount int64) (bool, error) {
	return g.post(ctx, fmt.Sprintf("%s/stock/add/%s/%d", g.baseURL, itemID, amount))
}

// post maps HTTP outcomes onto the saga operation contract: 2xx is an
// accepted call, 400 is a business rejection, anything else (including
// a timeout) is a transport failure.
func (g *HTTPStockGateway) post(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return false, errors.Wrap(err, "failed to build request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "stock service unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusBadRequest:
		return false, nil
	default:
		return false, errors.Errorf("stock service returned status %d", resp.StatusCode)
	}
}
