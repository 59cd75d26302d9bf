package rpc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/trips-gateway/internal/models"
)

func TestOrdersClient_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// Prices travel as exact decimal strings, never JSON numbers.
		assert.Contains(t, string(raw), `"price":"9.99"`)

		var body struct {
			OrderDetails []struct {
				ProductID string `json:"product_id"`
				Quantity  int    `json:"quantity"`
			} `json:"order_details"`
		}
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Len(t, body.OrderDetails, 1)
		assert.Equal(t, "the_odyssey", body.OrderDetails[0].ProductID)
		assert.Equal(t, 2, body.OrderDetails[0].Quantity)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]int{"id": 42})
	}))
	defer srv.Close()

	client := NewOrdersClient(srv.URL, testTimeout)
	id, err := client.CreateOrder(context.Background(), []models.OrderLine{
		{ProductID: "the_odyssey", Price: decimal.RequireFromString("9.99"), Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestOrdersClient_CreateOrder_ZeroLines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"order_details":[]`)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]int{"id": 1})
	}))
	defer srv.Close()

	client := NewOrdersClient(srv.URL, testTimeout)
	id, err := client.CreateOrder(context.Background(), []models.OrderLine{})

	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestOrdersClient_GetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 7,
			"order_details": [
				{"id": 1, "product_id": "the_enigma", "price": "19.99", "quantity": 3}
			]
		}`))
	}))
	defer srv.Close()

	client := NewOrdersClient(srv.URL, testTimeout)
	order, err := client.GetOrder(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	require.Len(t, order.OrderDetails, 1)
	assert.Equal(t, "the_enigma", order.OrderDetails[0].ProductID)
	assert.Equal(t, "19.99", order.OrderDetails[0].Price.String())
	assert.Equal(t, 3, order.OrderDetails[0].Quantity)
}

func TestOrdersClient_GetOrder_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewOrdersClient(srv.URL, testTimeout)
	_, err := client.GetOrder(context.Background(), 99)

	var notFound *OrderNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 99, notFound.ID)
}

func TestOrdersClient_ListOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Order{{ID: 1}, {ID: 2}})
	}))
	defer srv.Close()

	client := NewOrdersClient(srv.URL, testTimeout)
	orders, err := client.ListOrders(context.Background(), 2, 5)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
