package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Brand is one of the storefront's product lines.
type Brand string

const (
	BrandParivartan    Brand = "Parivartan"
	BrandAnandam       Brand = "Anandam"
	BrandPriestBooking Brand = "Priest Booking"
)

// Valid reports whether b is a known brand.
func (b Brand) Valid() bool {
	switch b {
	case BrandParivartan, BrandAnandam, BrandPriestBooking:
		return true
	}
	return false
}

// Product is a catalog item. Price is in the smallest currency unit.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Brand       Brand     `json:"brand"`
	Stock       int       `json:"stock"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter narrows a product listing. Empty fields match everything.
type Filter struct {
	Brand    string
	Category string
	Query    string
}
