package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderLine is a validated, normalized line item submitted at order creation.
// Price is an exact decimal; it marshals as a quoted string so no floating
// point rounding is introduced on the wire.
type OrderLine struct {
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is an order as held by the orders backend. Product and Image on each
// line are only populated after enrichment; the backend never stores them.
type Order struct {
	ID           int           `json:"id"`
	OrderDetails []OrderDetail `json:"order_details"`
}

// OrderDetail is a single line of a stored order.
type OrderDetail struct {
	ID        int             `json:"id"`
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Product   *Product        `json:"product,omitempty"`
	Image     string          `json:"image,omitempty"`
}

// CreateOrderRequest is the POST /orders payload. OrderDetails is a pointer so
// a missing key can be told apart from an empty list; an empty list is a valid
// zero-line order.
type CreateOrderRequest struct {
	OrderDetails *[]NewOrderLine `json:"order_details"`
}

// NewOrderLine is a single submitted line before normalization.
type NewOrderLine struct {
	ProductID string           `json:"product_id"`
	Price     *decimal.Decimal `json:"price"`
	Quantity  *int             `json:"quantity"`
}

// Validate checks that order_details is present and every line carries all
// required fields with a non-negative quantity.
func (r *CreateOrderRequest) Validate() error {
	if r.OrderDetails == nil {
		return fmt.Errorf("order_details is required")
	}
	for i, line := range *r.OrderDetails {
		if line.ProductID == "" {
			return fmt.Errorf("order_details[%d]: product_id is required", i)
		}
		if line.Price == nil {
			return fmt.Errorf("order_details[%d]: price is required", i)
		}
		if line.Quantity == nil {
			return fmt.Errorf("order_details[%d]: quantity is required", i)
		}
		if *line.Quantity < 0 {
			return fmt.Errorf("order_details[%d]: quantity must not be negative", i)
		}
	}
	return nil
}

// Lines converts a validated request into normalized order lines.
func (r *CreateOrderRequest) Lines() []OrderLine {
	lines := make([]OrderLine, 0, len(*r.OrderDetails))
	for _, line := range *r.OrderDetails {
		lines = append(lines, OrderLine{
			ProductID: line.ProductID,
			Price:     *line.Price,
			Quantity:  *line.Quantity,
		})
	}
	return lines
}
