package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gatewayUserID  = models.ID("550e8400-e29b-41d4-a716-446655440001")
	gatewayOrderID = models.ID("550e8400-e29b-41d4-a716-446655440000")
)

func paymentServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHTTPPaymentGateway_DebitUser_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t,
			"/payment/pay/"+gatewayUserID.String()+"/"+gatewayOrderID.String()+"/1500",
			r.URL.Path)
		w.Write([]byte(`{"Success":true}`))
	}))
	t.Cleanup(server.Close)

	gateway := NewHTTPPaymentGateway(server.URL)
	ok, err := gateway.DebitUser(context.Background(), gatewayUserID, gatewayOrderID, 1500)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHTTPPaymentGateway_DebitUser_InsufficientFundsRejected(t *testing.T) {
	server := paymentServer(t, http.StatusBadRequest, `{"Error":"Insufficient funds"}`)

	gateway := NewHTTPPaymentGateway(server.URL)
	ok, err := gateway.DebitUser(context.Background(), gatewayUserID, gatewayOrderID, 1500)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHTTPPaymentGateway_CreditUser_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t,
			"/payment/cancel/"+gatewayUserID.String()+"/"+gatewayOrderID.String()+"/1500",
			r.URL.Path)
		w.Write([]byte(`{"Success":true}`))
	}))
	t.Cleanup(server.Close)

	gateway := NewHTTPPaymentGateway(server.URL)
	ok, err := gateway.CreditUser(context.Background(), gatewayUserID, gatewayOrderID, 1500)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Refunding an order that was never paid comes back 404, which is a
// business rejection rather than a transport fault.
func TestHTTPPaymentGateway_CreditUser_UnpaidOrderRejected(t *testing.T) {
	server := paymentServer(t, http.StatusNotFound, `{"Error":"Order was not paid"}`)

	gateway := NewHTTPPaymentGateway(server.URL)
	ok, err := gateway.CreditUser(context.Background(), gatewayUserID, gatewayOrderID, 1500)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHTTPPaymentGateway_DebitUser_ServerError(t *testing.T) {
	server := paymentServer(t, http.StatusInternalServerError, "")

	gateway := NewHTTPPaymentGateway(server.URL)
	ok, err := gateway.DebitUser(context.Background(), gatewayUserID, gatewayOrderID, 1500)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHTTPPaymentGateway_SlowServerSurfacesAsError(t *testing.T) {
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

	gateway := NewHTTPPaymentGateway(server.URL)
	ok, err := gateway.DebitUser(ctx, gatewayUserID, gatewayOrderID, 1500)
	assert.Error(t, err)
	assert.False(t, ok)
}
