package order

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an order. Only pending is ever written by
// the storefront; later states are set by staff outside this service.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Order is a checked-out cart.
type Order struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	OrderNumber string    `json:"order_number"`
	Address     string    `json:"address"`
	Status      Status    `json:"status"`
	Items       []Item    `json:"items,omitempty"`
	Total       int64     `json:"total,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Item is an order line joined with the product's current name and price.
type Item struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name,omitempty"`
	Price     int64     `json:"price,omitempty"`
	Quantity  int       `json:"quantity"`
}

// LineRequest is one requested line at checkout.
type LineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	Items   []LineRequest `json:"items"`
	Address string        `json:"address"`
}
