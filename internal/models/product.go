package models

import "fmt"

// Product is owned by the products backend. The gateway never stores it; it
// only passes it through or references it by id.
type Product struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	MaximumSpeed      int    `json:"maximum_speed"`
	InStock           int    `json:"in_stock"`
	PassengerCapacity int    `json:"passenger_capacity"`
}

// CreateProductRequest is the POST /products payload. Integer fields are
// pointers so a missing field can be told apart from an explicit zero.
type CreateProductRequest struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	MaximumSpeed      *int   `json:"maximum_speed"`
	InStock           *int   `json:"in_stock"`
	PassengerCapacity *int   `json:"passenger_capacity"`
}

// Validate checks that every required field is present.
func (r *CreateProductRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.MaximumSpeed == nil {
		return fmt.Errorf("maximum_speed is required")
	}
	if r.InStock == nil {
		return fmt.Errorf("in_stock is required")
	}
	if r.PassengerCapacity == nil {
		return fmt.Errorf("passenger_capacity is required")
	}
	return nil
}

// Product converts a validated request into the backend representation.
func (r *CreateProductRequest) Product() Product {
	return Product{
		ID:                r.ID,
		Title:             r.Title,
		MaximumSpeed:      *r.MaximumSpeed,
		InStock:           *r.InStock,
		PassengerCapacity: *r.PassengerCapacity,
	}
}

// ProductUpdate carries the subset of fields to change on PATCH /products/{id}.
// Nil fields are left unchanged by the backend.
type ProductUpdate struct {
	Title             *string `json:"title,omitempty"`
	MaximumSpeed      *int    `json:"maximum_speed,omitempty"`
	InStock           *int    `json:"in_stock,omitempty"`
	PassengerCapacity *int    `json:"passenger_capacity,omitempty"`
}
