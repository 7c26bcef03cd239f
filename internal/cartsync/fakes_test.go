package cartsync

import (
	"context"
	"errors"
	"sync"
)

var errUnavailable = errors.New("service unavailable")

type recordingSink struct {
	mu        sync.Mutex
	mutations []Mutation
	err       error
}

func (s *recordingSink) Persist(ctx context.Context, m Mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations = append(s.mutations, m)
	return s.err
}

func (s *recordingSink) recorded() []Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Mutation, len(s.mutations))
	copy(out, s.mutations)
	return out
}

type memoryLocal struct {
	mu      sync.Mutex
	lines   []Line
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryLocal) Load(ctx context.Context) ([]Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.lines, nil
}

func (m *memoryLocal) Save(ctx context.Context, lines []Line) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lines = append([]Line(nil), lines...)
	return nil
}

type call struct {
	op        string
	token     string
	productID string
	quantity  int
}

type fakeRemote struct {
	mu       sync.Mutex
	rows     []RemoteRow
	fetchErr error
	writeErr error
	fetches  int
	calls    []call
}

func (f *fakeRemote) FetchCart(ctx context.Context, token string) ([]RemoteRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.rows, nil
}

func (f *fakeRemote) record(c call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return f.writeErr
}

func (f *fakeRemote) AddItem(ctx context.Context, token, productID string, quantity int) error {
	return f.record(call{op: "add", token: token, productID: productID, quantity: quantity})
}

func (f *fakeRemote) SetItemQuantity(ctx context.Context, token, productID string, quantity int) error {
	return f.record(call{op: "set", token: token, productID: productID, quantity: quantity})
}

func (f *fakeRemote) RemoveItem(ctx context.Context, token, productID string) error {
	return f.record(call{op: "remove", token: token, productID: productID})
}

func (f *fakeRemote) ClearCart(ctx context.Context, token string) error {
	return f.record(call{op: "clear", token: token})
}

func (f *fakeRemote) recorded() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}
