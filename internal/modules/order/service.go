package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidOrder wraps every checkout validation failure.
var ErrInvalidOrder = errors.New("invalid order")

// Service defines checkout and order history.
type Service interface {
	// PlaceOrder validates the requested lines and persists the order. The
	// user's server-side cart is emptied in the same transaction.
	PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*Order, error)

	// GetOrder returns one of the user's orders with its items and total.
	GetOrder(ctx context.Context, userID, id string) (*Order, error)

	ListOrders(ctx context.Context, userID string) ([]*Order, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*Order, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidOrder)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidOrder)
	}

	// ── Merge lines per product ──────────────────────────────────────────────
	var items []Item
	index := map[uuid.UUID]int{}
	for _, li := range req.Items {
		pid, err := uuid.Parse(li.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid productId %q", ErrInvalidOrder, li.ProductID)
		}
		if li.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0 for product %s", ErrInvalidOrder, li.ProductID)
		}
		if i, ok := index[pid]; ok {
			items[i].Quantity += li.Quantity
			continue
		}
		index[pid] = len(items)
		items = append(items, Item{ProductID: pid, Quantity: li.Quantity})
	}

	o := &Order{
		ID:          uuid.New(),
		UserID:      uid,
		OrderNumber: s.orderNumber(),
		Address:     address,
		Status:      StatusPending,
		Items:       items,
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		if errors.Is(err, ErrUnknownProduct) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, userID, id string) (*Order, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	oid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	o, err := s.repo.GetOrder(ctx, uid, oid)
	if err != nil {
		return nil, err
	}
	o.Total = 0
	for _, it := range o.Items {
		o.Total += it.Price * int64(it.Quantity)
	}
	return o, nil
}

func (s *service) ListOrders(ctx context.Context, userID string) ([]*Order, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	return s.repo.ListOrders(ctx, uid)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// orderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXXXX
func (s *service) orderNumber() string {
	date := s.now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:6])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}
