package rpc

import "fmt"

// ProductNotFoundError reports a product id that does not resolve at the
// products backend.
type ProductNotFoundError struct {
	ID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.ID)
}

// OrderNotFoundError reports an order id unknown to the orders backend.
type OrderNotFoundError struct {
	ID int
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %d not found", e.ID)
}

// ProductExistsError reports a create for a product id that is already taken.
type ProductExistsError struct {
	ID string
}

func (e *ProductExistsError) Error() string {
	return fmt.Sprintf("product %q already exists", e.ID)
}
