// Package rpctest provides in-memory implementations of the backend client
// interfaces for use in tests. The fakes record every call so tests can assert
// on call counts and arguments.
package rpctest

import (
	"context"
	"sync"

	"github.com/skyops/trips-gateway/internal/models"
	"github.com/skyops/trips-gateway/internal/rpc"
)

// Products is an in-memory rpc.ProductsClient.
type Products struct {
	mu    sync.Mutex
	store map[string]models.Product

	// Err, when set, fails every call with it before touching the store.
	Err error

	GetCalls    []string
	ExistsCalls []string
	UpdateCalls []models.ProductUpdate
}

// NewProducts seeds an in-memory products backend.
func NewProducts(seed ...models.Product) *Products {
	store := make(map[string]models.Product, len(seed))
	for _, p := range seed {
		store[p.ID] = p
	}
	return &Products{store: store}
}

var _ rpc.ProductsClient = (*Products)(nil)

func (f *Products) Get(_ context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls = append(f.GetCalls, id)
	if f.Err != nil {
		return nil, f.Err
	}
	product, ok := f.store[id]
	if !ok {
		return nil, &rpc.ProductNotFoundError{ID: id}
	}
	return &product, nil
}

func (f *Products) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ExistsCalls = append(f.ExistsCalls, id)
	if f.Err != nil {
		return false, f.Err
	}
	_, ok := f.store[id]
	return ok, nil
}

func (f *Products) Create(_ context.Context, product models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if _, ok := f.store[product.ID]; ok {
		return &rpc.ProductExistsError{ID: product.ID}
	}
	f.store[product.ID] = product
	return nil
}

func (f *Products) Update(_ context.Context, id string, fields models.ProductUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls = append(f.UpdateCalls, fields)
	if f.Err != nil {
		return f.Err
	}
	product, ok := f.store[id]
	if !ok {
		return &rpc.ProductNotFoundError{ID: id}
	}
	if fields.Title != nil {
		product.Title = *fields.Title
	}
	if fields.MaximumSpeed != nil {
		product.MaximumSpeed = *fields.MaximumSpeed
	}
	if fields.InStock != nil {
		product.InStock = *fields.InStock
	}
	if fields.PassengerCapacity != nil {
		product.PassengerCapacity = *fields.PassengerCapacity
	}
	f.store[id] = product
	return nil
}

func (f *Products) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if _, ok := f.store[id]; !ok {
		return &rpc.ProductNotFoundError{ID: id}
	}
	delete(f.store, id)
	return nil
}

func (f *Products) List(_ context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	products := make([]models.Product, 0, len(f.store))
	for _, product := range f.store {
		products = append(products, product)
	}
	return products, nil
}

// PageRequest records one list_orders call.
type PageRequest struct {
	Page    int
	PerPage int
}

// Orders is an in-memory rpc.OrdersClient. Created orders get sequential ids
// starting at 1.
type Orders struct {
	mu     sync.Mutex
	store  map[int]models.Order
	nextID int

	// Err, when set, fails every call with it before touching the store.
	Err error

	CreateCalls [][]models.OrderLine
	ListCalls   []PageRequest
}

// NewOrders seeds an in-memory orders backend.
func NewOrders(seed ...models.Order) *Orders {
	store := make(map[int]models.Order, len(seed))
	nextID := 1
	for _, o := range seed {
		store[o.ID] = o
		if o.ID >= nextID {
			nextID = o.ID + 1
		}
	}
	return &Orders{store: store, nextID: nextID}
}

var _ rpc.OrdersClient = (*Orders)(nil)

func (f *Orders) GetOrder(_ context.Context, id int) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	order, ok := f.store[id]
	if !ok {
		return nil, &rpc.OrderNotFoundError{ID: id}
	}
	// Copy the details slice so enrichment does not mutate the store.
	details := make([]models.OrderDetail, len(order.OrderDetails))
	copy(details, order.OrderDetails)
	order.OrderDetails = details
	return &order, nil
}

func (f *Orders) ListOrders(_ context.Context, page, perPage int) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls = append(f.ListCalls, PageRequest{Page: page, PerPage: perPage})
	if f.Err != nil {
		return nil, f.Err
	}
	orders := make([]models.Order, 0, len(f.store))
	for _, order := range f.store {
		orders = append(orders, order)
	}
	return orders, nil
}

func (f *Orders) CreateOrder(_ context.Context, lines []models.OrderLine) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls = append(f.CreateCalls, lines)
	if f.Err != nil {
		return 0, f.Err
	}
	details := make([]models.OrderDetail, 0, len(lines))
	for i, line := range lines {
		details = append(details, models.OrderDetail{
			ID:        i + 1,
			ProductID: line.ProductID,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	order := models.Order{ID: f.nextID, OrderDetails: details}
	f.store[order.ID] = order
	f.nextID++
	return order.ID, nil
}
