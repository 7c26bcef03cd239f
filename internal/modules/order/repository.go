package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("order not found")
	ErrUnknownProduct = errors.New("order references an unknown product")
)

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder inserts the order and its items and empties the owner's
	// cart, all in one transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrder returns the order with its items, or ErrNotFound when it does
	// not exist or belongs to another user.
	GetOrder(ctx context.Context, userID, id uuid.UUID) (*Order, error)

	// ListOrders returns the user's orders, newest first, without items.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*Order, error)
}
