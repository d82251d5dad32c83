// Package store holds well-formed declarations used by the analyzer and
// generator tests.
package store

import (
	"time"
)

// Product represents an individual item available for sale.
//
//nullablegen:generate
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Inventory   int       `json:"inventory_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Customer represents the user placing orders.
//
//nullablegen:generate
type Customer struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Address  *string `json:"address"`
	IsActive bool    `json:"is_active"`
	notes    []string
}

// Order represents a transaction made by a customer. It is not marked and
// is only generated when requested by name.
type Order struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	Status     OrderStatus       `json:"status"`
	Items      []OrderItem       `json:"items"`
	Labels     map[string]string `json:"labels"`
	OrderedAt  time.Time         `json:"ordered_at"`
}

// OrderItem represents a specific product line within an order.
type OrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Page is a generic container.
//
//nullablegen:generate
type Page[T any, K comparable] struct {
	Items  []T
	Cursor K
	Total  int
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
