package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skyops/trips-gateway/internal/models"
	"github.com/skyops/trips-gateway/internal/rpc"
	"github.com/skyops/trips-gateway/internal/service"
)

// Pagination defaults applied when the query parameters are absent.
const (
	defaultPage    = 1
	defaultPerPage = 10
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service *service.OrderService
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error(), h.log)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	id, err := h.service.CreateOrder(r.Context(), req.Lines())
	if err != nil {
		var notFound *rpc.ProductNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, notFound.Error(), h.log)
			return
		}
		h.log.Error("failed to create order", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"id": id}, h.log)
}

// GetOrder handles GET /orders/{orderID}. The route constrains orderID to
// digits, so parsing only fails on out-of-range values.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Order not found", h.log)
		return
	}

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		var orderNotFound *rpc.OrderNotFoundError
		var productNotFound *rpc.ProductNotFoundError
		switch {
		case errors.As(err, &orderNotFound):
			writeError(w, http.StatusNotFound, orderNotFound.Error(), h.log)
		case errors.As(err, &productNotFound):
			// A line references a product deleted after the order was created.
			writeError(w, http.StatusNotFound, productNotFound.Error(), h.log)
		default:
			h.log.Error("failed to get order", "order_id", orderID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	writeJSON(w, http.StatusOK, order, h.log)
}

// ListOrders handles GET /orders/all?p=&per_page=. Absent parameters default
// to page 1 and 10 per page; non-integer or non-positive values are rejected.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "p", defaultPage)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}
	perPage, err := queryInt(r, "per_page", defaultPerPage)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), page, perPage)
	if err != nil {
		h.log.Error("failed to list orders", "page", page, "per_page", perPage, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeCollection(w, http.StatusOK, orders, h.log)
}

// queryInt parses an integer query parameter, returning def when absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("parameter " + key + " must be an integer")
	}
	if value < 1 {
		return 0, errors.New("parameter " + key + " must be at least 1")
	}
	return value, nil
}
