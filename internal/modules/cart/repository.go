package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidProduct = errors.New("invalid product id")
	ErrUnknownProduct = errors.New("product not found")
)

// Repository defines data access for per-user carts.
type Repository interface {
	// List returns the user's cart rows joined with product details.
	List(ctx context.Context, userID uuid.UUID) ([]Item, error)

	// Add merges quantity into the user's line for productID, creating it if needed.
	Add(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// SetQuantity replaces a line's quantity. Missing lines are left alone.
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// Remove deletes one line.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// Clear deletes every line the user has.
	Clear(ctx context.Context, userID uuid.UUID) error
}
