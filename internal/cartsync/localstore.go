package cartsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedLocalCart is returned when a stored blob does not decode to a
// line list. Callers treat it as "no local cart".
var ErrMalformedLocalCart = errors.New("malformed local cart")

// LocalStore holds the device's cart as one blob that is overwritten on
// every save. Load returns nil lines and a nil error when nothing is stored.
type LocalStore interface {
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
}

func encodeLines(lines []Line) ([]byte, error) {
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(lines)
}

func decodeLines(b []byte) ([]Line, error) {
	var lines []Line
	if err := json.Unmarshal(b, &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLocalCart, err)
	}
	if lines == nil {
		// "null" decodes cleanly but is not a line list.
		return nil, ErrMalformedLocalCart
	}
	for _, l := range lines {
		if l.Product.ID == "" {
			return nil, fmt.Errorf("%w: line without product id", ErrMalformedLocalCart)
		}
	}
	return lines, nil
}
