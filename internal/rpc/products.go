package rpc

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/skyops/trips-gateway/internal/models"
)

// ProductsClient is the gateway's view of the products backend.
type ProductsClient interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, product models.Product) error
	Update(ctx context.Context, id string, fields models.ProductUpdate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Product, error)
}

type productsClient struct {
	*backendClient
}

// NewProductsClient returns a ProductsClient speaking HTTP/JSON to the
// products service at baseURL.
func NewProductsClient(baseURL string, timeout time.Duration) ProductsClient {
	return &productsClient{newBackendClient("products", baseURL, timeout)}
}

func (c *productsClient) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	resp, err := c.do(ctx, "get", http.MethodGet, "/products/"+url.PathEscape(id), nil, &product)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return &product, nil
	case http.StatusNotFound:
		return nil, &ProductNotFoundError{ID: id}
	default:
		return nil, c.unexpectedStatus("get", resp)
	}
}

func (c *productsClient) Exists(ctx context.Context, id string) (bool, error) {
	var result struct {
		Exists bool `json:"exists"`
	}
	resp, err := c.do(ctx, "exists", http.MethodGet, "/products/"+url.PathEscape(id)+"/exists", nil, &result)
	if err != nil {
		return false, err
	}
	if resp.StatusCode() != http.StatusOK {
		return false, c.unexpectedStatus("exists", resp)
	}
	return result.Exists, nil
}

func (c *productsClient) Create(ctx context.Context, product models.Product) error {
	resp, err := c.do(ctx, "create", http.MethodPost, "/products", product, nil)
	if err != nil {
		return err
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusConflict:
		return &ProductExistsError{ID: product.ID}
	default:
		return c.unexpectedStatus("create", resp)
	}
}

func (c *productsClient) Update(ctx context.Context, id string, fields models.ProductUpdate) error {
	resp, err := c.do(ctx, "update", http.MethodPatch, "/products/"+url.PathEscape(id), fields, nil)
	if err != nil {
		return err
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return &ProductNotFoundError{ID: id}
	default:
		return c.unexpectedStatus("update", resp)
	}
}

func (c *productsClient) Delete(ctx context.Context, id string) error {
	resp, err := c.do(ctx, "delete", http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return &ProductNotFoundError{ID: id}
	default:
		return c.unexpectedStatus("delete", resp)
	}
}

func (c *productsClient) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	resp, err := c.do(ctx, "list", http.MethodGet, "/products", nil, &products)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, c.unexpectedStatus("list", resp)
	}
	return products, nil
}
