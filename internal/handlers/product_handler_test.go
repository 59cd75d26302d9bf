package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/trips-gateway/internal/models"
	"github.com/skyops/trips-gateway/internal/rpc/rpctest"
)

func TestProductHandler_GetProduct(t *testing.T) {
	router := newTestRouter(rpctest.NewProducts(seedProducts()...), rpctest.NewOrders())

	w := doRequest(t, router, http.MethodGet, "/products/the_odyssey", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var product models.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
	assert.Equal(t, models.Product{
		ID: "the_odyssey", Title: "The Odyssey", MaximumSpeed: 5, InStock: 10, PassengerCapacity: 101,
	}, product)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	router := newTestRouter(rpctest.NewProducts(seedProducts()...), rpctest.NewOrders())

	w := doRequest(t, router, http.MethodGet, "/products/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_ListProducts(t *testing.T) {
	router := newTestRouter(rpctest.NewProducts(seedProducts()...), rpctest.NewOrders())

	w := doRequest(t, router, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int              `json:"count"`
		Data  []models.Product `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Data, 2)
}

func TestProductHandler_CreateProduct(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantError  string
	}{
		{
			name: "valid product",
			body: map[string]any{
				"id": "the_argo", "title": "The Argo",
				"maximum_speed": 12, "in_stock": 3, "passenger_capacity": 50,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid JSON",
			body:       "{",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing required field",
			body: map[string]any{
				"id": "the_argo", "title": "The Argo",
				"in_stock": 3, "passenger_capacity": 50,
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "maximum_speed is required",
		},
		{
			name: "zero values are valid field values",
			body: map[string]any{
				"id": "the_wreck", "title": "The Wreck",
				"maximum_speed": 0, "in_stock": 0, "passenger_capacity": 0,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate id",
			body: map[string]any{
				"id": "the_odyssey", "title": "The Odyssey",
				"maximum_speed": 5, "in_stock": 10, "passenger_capacity": 101,
			},
			wantStatus: http.StatusConflict,
			wantError:  `product "the_odyssey" already exists`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(rpctest.NewProducts(seedProducts()...), rpctest.NewOrders())

			w := doRequest(t, router, http.MethodPost, "/products", tt.body)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			var resp map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			if tt.wantStatus == http.StatusCreated {
				body := tt.body.(map[string]any)
				assert.Equal(t, body["id"], resp["id"])
				return
			}
			if tt.wantError != "" {
				assert.Contains(t, resp["error"], tt.wantError)
			}
		})
	}
}

func TestProductHandler_UpdateProduct_PartialUpdate(t *testing.T) {
	products := rpctest.NewProducts(seedProducts()...)
	router := newTestRouter(products, rpctest.NewOrders())

	w := doRequest(t, router, http.MethodPatch, "/products/the_odyssey", map[string]any{"title": "New"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "the_odyssey", resp["id"])

	// Only the supplied field reaches the backend.
	require.Len(t, products.UpdateCalls, 1)
	fields := products.UpdateCalls[0]
	require.NotNil(t, fields.Title)
	assert.Equal(t, "New", *fields.Title)
	assert.Nil(t, fields.MaximumSpeed)
	assert.Nil(t, fields.InStock)
	assert.Nil(t, fields.PassengerCapacity)

	// All other fields stay unchanged.
	w = doRequest(t, router, http.MethodGet, "/products/the_odyssey", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var product models.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
	assert.Equal(t, models.Product{
		ID: "the_odyssey", Title: "New", MaximumSpeed: 5, InStock: 10, PassengerCapacity: 101,
	}, product)
}

func TestProductHandler_UpdateProduct_NotFound(t *testing.T) {
	router := newTestRouter(rpctest.NewProducts(seedProducts()...), rpctest.NewOrders())

	w := doRequest(t, router, http.MethodPatch, "/products/unknown", map[string]any{"title": "New"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	router := newTestRouter(rpctest.NewProducts(seedProducts()...), rpctest.NewOrders())

	w := doRequest(t, router, http.MethodDelete, "/products/the_odyssey", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "the_odyssey", resp["deleted_id"])

	// Deleting again reports not found.
	w = doRequest(t, router, http.MethodDelete, "/products/the_odyssey", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
