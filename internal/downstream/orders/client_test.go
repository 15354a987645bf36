package orders_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storiqa/saga-coordinator/internal/downstream/model"
	"github.com/storiqa/saga-coordinator/internal/downstream/orders"
	"github.com/storiqa/saga-coordinator/internal/downstream/transport"
	"github.com/storiqa/saga-coordinator/internal/infrastructure/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ConvertCart(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]model.Order{{ID: 1, CustomerID: 7}})
	}))
	defer srv.Close()

	caller := transport.New(httpclient.NewRawClient(srv.Client()), srv.URL)
	client := orders.New(caller).WithUser(7)

	out, err := client.ConvertCart(context.Background(), model.ConvertCartPayload{CustomerID: 7})
	require.NoError(t, err)
	assert.Equal(t, "/orders/create_from_cart", gotPath)
	require.Len(t, out, 1)
	assert.Equal(t, 7, out[0].CustomerID)
}

func TestClient_RevertConvertCartSendsConversionID(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	caller := transport.New(httpclient.NewRawClient(srv.Client()), srv.URL)
	client := orders.New(caller).WithSuperadmin()

	err := client.RevertConvertCart(context.Background(), "conversion-1")
	require.NoError(t, err)
	assert.Equal(t, "conversion-1", gotBody["conversion_id"])
}

func TestClient_DeleteOrdersByCustomerID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	caller := transport.New(httpclient.NewRawClient(srv.Client()), srv.URL)
	client := orders.New(caller).WithSuperadmin()

	err := client.DeleteOrdersByCustomerID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "/orders/by-customer-id/7", gotPath)
}
