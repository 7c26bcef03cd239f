package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service is the remote cart: every write is a delta against the stored
// rows, never a full replacement.
type Service interface {
	GetCart(ctx context.Context, userID string) ([]Item, error)
	AddItem(ctx context.Context, userID string, req AddItemRequest) error
	// SetQuantity removes the line when quantity is not positive.
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	ClearCart(ctx context.Context, userID string) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetCart(ctx context.Context, userID string) ([]Item, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	return s.repo.List(ctx, uid)
}

func (s *service) AddItem(ctx context.Context, userID string, req AddItemRequest) error {
	uid, pid, err := parseIDs(userID, req.ProductID)
	if err != nil {
		return err
	}
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}
	return s.repo.Add(ctx, uid, pid, qty)
}

func (s *service) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	uid, pid, err := parseIDs(userID, productID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return s.repo.Remove(ctx, uid, pid)
	}
	return s.repo.SetQuantity(ctx, uid, pid, quantity)
}

func (s *service) RemoveItem(ctx context.Context, userID, productID string) error {
	uid, pid, err := parseIDs(userID, productID)
	if err != nil {
		return err
	}
	return s.repo.Remove(ctx, uid, pid)
}

func (s *service) ClearCart(ctx context.Context, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	return s.repo.Clear(ctx, uid)
}

func parseIDs(userID, productID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidProduct
	}
	return uid, pid, nil
}
