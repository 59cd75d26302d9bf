package service

import (
	"context"

	"github.com/skyops/trips-gateway/internal/models"
	"github.com/skyops/trips-gateway/internal/rpc"
)

// ProductService passes product CRUD straight through to the products backend.
// The products service owns the product lifecycle entirely.
type ProductService struct {
	products rpc.ProductsClient
}

// NewProductService creates a new product service.
func NewProductService(products rpc.ProductsClient) *ProductService {
	return &ProductService{products: products}
}

// GetProduct returns a product by id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.Get(ctx, id)
}

// ListProducts returns all products known to the backend.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

// CreateProduct registers a new product.
func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) error {
	return s.products.Create(ctx, product)
}

// UpdateProduct applies a partial update; nil fields are left unchanged.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, fields models.ProductUpdate) error {
	return s.products.Update(ctx, id, fields)
}

// DeleteProduct removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
