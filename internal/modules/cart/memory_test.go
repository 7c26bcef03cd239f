package cart_test

import (
	"context"
	"sync"

	"github.com/georgemunganga/pooja-store/internal/modules/cart"
	"github.com/google/uuid"
)

type product struct {
	name     string
	price    int64
	category string
	brand    string
}

// memoryRepo mirrors the SQL semantics of the postgres repository.
type memoryRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]product
	lines    map[uuid.UUID][]line
	err      error
}

type line struct {
	productID uuid.UUID
	quantity  int
}

func newMemoryRepo(products map[uuid.UUID]product) *memoryRepo {
	return &memoryRepo{products: products, lines: map[uuid.UUID][]line{}}
}

func (m *memoryRepo) List(ctx context.Context, userID uuid.UUID) ([]cart.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	items := []cart.Item{}
	for _, l := range m.lines[userID] {
		p := m.products[l.productID]
		items = append(items, cart.Item{
			ProductID: l.productID, Name: p.name, Price: p.price,
			Category: p.category, Brand: p.brand, Quantity: l.quantity,
		})
	}
	return items, nil
}

func (m *memoryRepo) Add(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[productID]; !ok {
		return cart.ErrUnknownProduct
	}
	for i, l := range m.lines[userID] {
		if l.productID == productID {
			m.lines[userID][i].quantity += quantity
			return nil
		}
	}
	m.lines[userID] = append(m.lines[userID], line{productID: productID, quantity: quantity})
	return nil
}

func (m *memoryRepo) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.lines[userID] {
		if l.productID == productID {
			m.lines[userID][i].quantity = quantity
		}
	}
	return m.err
}

func (m *memoryRepo) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.lines[userID][:0]
	for _, l := range m.lines[userID] {
		if l.productID != productID {
			kept = append(kept, l)
		}
	}
	m.lines[userID] = kept
	return m.err
}

func (m *memoryRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lines, userID)
	return m.err
}
