package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyops/trips-gateway/internal/models"
	"github.com/skyops/trips-gateway/internal/rpc"
	"github.com/skyops/trips-gateway/internal/service"
)

// ProductHandler handles product-related HTTP requests. Every operation is a
// single pass-through call to the products backend.
type ProductHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// GetProduct handles GET /products/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		var notFound *rpc.ProductNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, notFound.Error(), h.log)
			return
		}
		h.log.Error("failed to get product", "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeJSON(w, http.StatusOK, product, h.log)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeCollection(w, http.StatusOK, products, h.log)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error(), h.log)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	if err := h.service.CreateProduct(r.Context(), req.Product()); err != nil {
		var exists *rpc.ProductExistsError
		if errors.As(err, &exists) {
			writeError(w, http.StatusConflict, exists.Error(), h.log)
			return
		}
		h.log.Error("failed to create product", "product_id", req.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("product created", "product_id", req.ID)
	writeJSON(w, http.StatusCreated, map[string]string{"id": req.ID}, h.log)
}

// UpdateProduct handles PATCH /products/{productID}. Only the supplied fields
// change; everything else stays as is.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var fields models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error(), h.log)
		return
	}

	if err := h.service.UpdateProduct(r.Context(), productID, fields); err != nil {
		var notFound *rpc.ProductNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, notFound.Error(), h.log)
			return
		}
		h.log.Error("failed to update product", "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": productID}, h.log)
}

// DeleteProduct handles DELETE /products/{productID}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		var notFound *rpc.ProductNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, notFound.Error(), h.log)
			return
		}
		h.log.Error("failed to delete product", "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("product deleted", "product_id", productID)
	writeJSON(w, http.StatusOK, map[string]string{"deleted_id": productID}, h.log)
}
