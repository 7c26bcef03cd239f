package cart

import "github.com/google/uuid"

// Item is one cart row joined with its product. It deliberately has no
// stock column; clients fill that in themselves.
type Item struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand"`
	Quantity  int       `json:"quantity"`
}

// AddItemRequest adds Quantity to the caller's line for ProductID.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// SetQuantityRequest replaces the quantity of a line.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}
