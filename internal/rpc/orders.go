package rpc

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/skyops/trips-gateway/internal/models"
)

// OrdersClient is the gateway's view of the orders backend.
type OrdersClient interface {
	GetOrder(ctx context.Context, id int) (*models.Order, error)
	ListOrders(ctx context.Context, page, perPage int) ([]models.Order, error)
	CreateOrder(ctx context.Context, lines []models.OrderLine) (int, error)
}

type ordersClient struct {
	*backendClient
}

// NewOrdersClient returns an OrdersClient speaking HTTP/JSON to the orders
// service at baseURL.
func NewOrdersClient(baseURL string, timeout time.Duration) OrdersClient {
	return &ordersClient{newBackendClient("orders", baseURL, timeout)}
}

func (c *ordersClient) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	resp, err := c.do(ctx, "get_order", http.MethodGet, "/orders/"+strconv.Itoa(id), nil, &order)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return &order, nil
	case http.StatusNotFound:
		return nil, &OrderNotFoundError{ID: id}
	default:
		return nil, c.unexpectedStatus("get_order", resp)
	}
}

func (c *ordersClient) ListOrders(ctx context.Context, page, perPage int) ([]models.Order, error) {
	var orders []models.Order
	resp, err := c.do(ctx, "list_orders",
		http.MethodGet, "/orders?page="+strconv.Itoa(page)+"&per_page="+strconv.Itoa(perPage),
		nil, &orders)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, c.unexpectedStatus("list_orders", resp)
	}
	return orders, nil
}

func (c *ordersClient) CreateOrder(ctx context.Context, lines []models.OrderLine) (int, error) {
	// Prices marshal as quoted decimal strings, so exact values reach the
	// backend with no floating point drift.
	body := map[string]any{"order_details": lines}
	var result struct {
		ID int `json:"id"`
	}
	resp, err := c.do(ctx, "create_order", http.MethodPost, "/orders", body, &result)
	if err != nil {
		return 0, err
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		return result.ID, nil
	default:
		return 0, c.unexpectedStatus("create_order", resp)
	}
}
