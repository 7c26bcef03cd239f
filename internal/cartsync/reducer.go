package cartsync

// Action is a cart transition understood by Reduce.
type Action interface {
	actionName() string
}

// AddLine adds Quantity of Product, merging into an existing line.
type AddLine struct {
	Product  Product
	Quantity int
}

// RemoveLine drops the line for ProductID.
type RemoveLine struct {
	ProductID string
}

// SetQuantity replaces the quantity of an existing line. A non-positive
// quantity removes the line.
type SetQuantity struct {
	ProductID string
	Quantity  int
}

// Clear empties the cart.
type Clear struct{}

// Replace swaps in a whole line list, as done at bootstrap.
type Replace struct {
	Lines []Line
}

func (AddLine) actionName() string     { return "add" }
func (RemoveLine) actionName() string  { return "remove" }
func (SetQuantity) actionName() string { return "set_quantity" }
func (Clear) actionName() string       { return "clear" }
func (Replace) actionName() string     { return "replace" }

// ActionName reports a short label for logging.
func ActionName(a Action) string {
	if a == nil {
		return "unknown"
	}
	return a.actionName()
}

// Reduce computes the state that follows applying a to s. It has no side
// effects and never modifies s.Items in place.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case AddLine:
		qty := act.Quantity
		if qty <= 0 {
			qty = 1
		}
		items := make([]Line, 0, len(s.Items)+1)
		merged := false
		for _, l := range s.Items {
			if l.Product.ID == act.Product.ID {
				l.Quantity += qty
				merged = true
			}
			items = append(items, l)
		}
		if !merged {
			items = append(items, Line{Product: act.Product, Quantity: qty})
		}
		return newState(items)

	case RemoveLine:
		return newState(without(s.Items, act.ProductID))

	case SetQuantity:
		if act.Quantity <= 0 {
			return newState(without(s.Items, act.ProductID))
		}
		items := make([]Line, 0, len(s.Items))
		for _, l := range s.Items {
			if l.Product.ID == act.ProductID {
				l.Quantity = act.Quantity
			}
			items = append(items, l)
		}
		return newState(items)

	case Clear:
		return State{Items: []Line{}}

	case Replace:
		return newState(normalize(act.Lines))

	default:
		return s
	}
}

func without(items []Line, productID string) []Line {
	out := make([]Line, 0, len(items))
	for _, l := range items {
		if l.Product.ID != productID {
			out = append(out, l)
		}
	}
	return out
}

// normalize keeps one line per product id, in first-seen order, and coerces
// non-positive quantities to 1.
func normalize(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			l.Quantity = 1
		}
		if i, ok := index[l.Product.ID]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		index[l.Product.ID] = len(out)
		out = append(out, l)
	}
	return out
}
