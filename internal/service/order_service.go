package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skyops/trips-gateway/internal/models"
	"github.com/skyops/trips-gateway/internal/rpc"
)

// Creation phases for the validate-then-commit flow. The commit call is never
// issued while any existence check is outstanding, so no partial order can be
// created.
const (
	phaseValidating = "validating"
	phaseCommitting = "committing"
	phaseDone       = "done"
	phaseFailed     = "failed"
)

// OrderService orchestrates order workflows across the products and orders
// backends.
type OrderService struct {
	products  rpc.ProductsClient
	orders    rpc.OrdersClient
	imageRoot string
	log       *slog.Logger
}

// NewOrderService creates an order orchestrator. imageRoot is the base URL
// used to derive line item image links.
func NewOrderService(products rpc.ProductsClient, orders rpc.OrdersClient, imageRoot string, log *slog.Logger) *OrderService {
	return &OrderService{
		products:  products,
		orders:    orders,
		imageRoot: imageRoot,
		log:       log,
	}
}

// orderCreation tracks one validate-then-commit run so the current phase is
// visible in logs.
type orderCreation struct {
	lines []models.OrderLine
	phase string
	log   *slog.Logger
}

func (c *orderCreation) transition(next string) {
	c.phase = next
	c.log.Debug("order creation", "phase", c.phase, "lines", len(c.lines))
}

// CreateOrder confirms that every referenced product exists, then submits the
// lines to the orders backend. Checks run one line at a time with no
// deduplication; the first missing product aborts the whole operation and no
// order is created. An empty line list is valid and produces a zero-line order.
func (s *OrderService) CreateOrder(ctx context.Context, lines []models.OrderLine) (int, error) {
	creation := &orderCreation{lines: lines, log: s.log}
	creation.transition(phaseValidating)

	for _, line := range lines {
		exists, err := s.products.Exists(ctx, line.ProductID)
		if err != nil {
			creation.transition(phaseFailed)
			return 0, fmt.Errorf("checking product %q: %w", line.ProductID, err)
		}
		if !exists {
			creation.transition(phaseFailed)
			return 0, &rpc.ProductNotFoundError{ID: line.ProductID}
		}
	}

	creation.transition(phaseCommitting)
	id, err := s.orders.CreateOrder(ctx, lines)
	if err != nil {
		creation.transition(phaseFailed)
		return 0, fmt.Errorf("committing order: %w", err)
	}

	creation.transition(phaseDone)
	s.log.Info("order created", "order_id", id, "lines", len(lines))
	return id, nil
}

// GetOrder fetches an order and enriches every line with the current product
// record and a derived image URL. Product lookups run one per line, in line
// order. A product that no longer exists fails the whole retrieval; there is
// no partial enrichment.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	for i := range order.OrderDetails {
		detail := &order.OrderDetails[i]
		product, err := s.products.Get(ctx, detail.ProductID)
		if err != nil {
			return nil, fmt.Errorf("enriching order %d: %w", id, err)
		}
		detail.Product = product
		detail.Image = fmt.Sprintf("%s/%s.jpg", s.imageRoot, detail.ProductID)
	}

	return order, nil
}

// ListOrders returns one page of raw order summaries. Listing never enriches
// with product data; that is a deliberate scope boundary with GetOrder.
func (s *OrderService) ListOrders(ctx context.Context, page, perPage int) ([]models.Order, error) {
	return s.orders.ListOrders(ctx, page, perPage)
}
