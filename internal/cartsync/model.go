package cartsync

// Brand is one of the storefront's fixed product lines.
type Brand string

const (
	BrandParivartan    Brand = "Parivartan"
	BrandAnandam       Brand = "Anandam"
	BrandPriestBooking Brand = "Priest Booking"
)

// SentinelStock stands in for live stock when a data source does not carry it.
// The remote cart read omits stock, so hydrated lines get this ceiling.
const SentinelStock = 999

// Product is a catalog item as seen by the cart. The cart only references it.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Brand       Brand  `json:"brand"`
	Stock       int    `json:"stock"`
	Description string `json:"description,omitempty"`
}

// Line pairs a product with a positive quantity.
type Line struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// State is the cart: lines in insertion order plus totals derived from them.
type State struct {
	Items     []Line `json:"items"`
	Total     int64  `json:"total"`
	ItemCount int    `json:"itemCount"`
}

// newState builds a State from lines, recomputing both totals.
func newState(items []Line) State {
	s := State{Items: items}
	for _, l := range items {
		s.Total += l.Product.Price * int64(l.Quantity)
		s.ItemCount += l.Quantity
	}
	return s
}

// Clone returns a copy whose Items slice is not shared with s.
func (s State) Clone() State {
	items := make([]Line, len(s.Items))
	copy(items, s.Items)
	return State{Items: items, Total: s.Total, ItemCount: s.ItemCount}
}

// Line returns the line for productID, if present.
func (s State) Line(productID string) (Line, bool) {
	for _, l := range s.Items {
		if l.Product.ID == productID {
			return l, true
		}
	}
	return Line{}, false
}
