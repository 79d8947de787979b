package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/philippedeb/order-system/order-service/domain"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gatewayItemID = models.ID("550e8400-e29b-41d4-a716-446655440011")

func stockServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHTTPStockGateway_FindItem_DecodesItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stock/find/"+gatewayItemID.String(), r.URL.Path)
		w.Write([]byte(`{"id":"` + gatewayItemID.String() + `","price":1000,"stock":3}`))
	}))
	t.Cleanup(server.Close)

	gateway := NewHTTPStockGateway(server.URL)
	item, err := gateway.FindItem(context.Background(), gatewayItemID)
	require.NoError(t, err)
	assert.Equal(t, gatewayItemID, item.ID)
	assert.Equal(t, int64(1000), item.Price)
	assert.Equal(t, int64(3), item.Stock)
}

func TestHTTPStockGateway_FindItem_NotFound(t *testing.T) {
	server := stockServer(t, http.StatusNotFound, `{"Error":"Item not found"}`)

	gateway := NewHTTPStockGateway(server.URL)
	_, err := gateway.FindItem(context.Background(), gatewayItemID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestHTTPStockGateway_FindItem_ServerError(t *testing.T) {
	server := stockServer(t, http.StatusInternalServerError, "")

	gateway := NewHTTPStockGateway(server.URL)
	_, err := gateway.FindItem(context.Background(), gatewayItemID)
	assert.Error(t, err)
}

func TestHTTPStockGateway_DecrementStock_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stock/subtract/"+gatewayItemID.String()+"/2", r.URL.Path)
		w.Write([]byte(`{"stock":1}`))
	}))
	t.Cleanup(server.Close)

	gateway := NewHTTPStockGateway(server.URL)
	ok, err := gateway.DecrementStock(context.Background(), gatewayItemID, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

// A 400 is a business rejection, not an error: the saga records the
// step as failed without a transport fault.
func TestHTTPStockGateway_DecrementStock_Rejected(t *testing.T) {
	server := stockServer(t, http.StatusBadRequest, `{"Error":"Insufficient stock"}`)

	gateway := NewHTTPStockGateway(server.URL)
	ok, err := gateway.DecrementStock(context.Background(), gatewayItemID, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHTTPStockGateway_DecrementStock_ServerError(t *testing.T) {
	server := stockServer(t, http.StatusBadGateway, "")

	gateway := NewHTTPStockGateway(server.URL)
	ok, err := gateway.DecrementStock(context.Background(), gatewayItemID, 2)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHTTPStockGateway_IncrementStock_Accepted(t *testing.T) {
	server := stockServer(t, http.StatusOK, `{"stock":3}`)

	gateway := NewHTTPStockGateway(server.URL)
	ok, err := gateway.IncrementStock(context.Background(), gatewayItemID, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

// A downstream that stops answering must surface as a transport error
// before the saga is left hanging.
func TestHTTPStockGateway_SlowServerSurfacesAsError(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(func() {
		close(block)
		server.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	gateway := NewHTTPStockGateway(server.URL)
	ok, err := gateway.DecrementStock(ctx, gatewayItemID, 1)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHTTPStockGateway_UnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gateway := NewHTTPStockGateway(server.URL)
	_, err := gateway.FindItem(context.Background(), gatewayItemID)
	assert.Error(t, err)
}
