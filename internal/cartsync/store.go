package cartsync

import "sync"

// Store owns the canonical cart state. Dispatches are serialized so only one
// reducer call is ever in flight.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore returns a store holding an empty cart.
func NewStore() *Store {
	return &Store{state: State{Items: []Line{}}}
}

// Dispatch applies a and returns a copy of the resulting state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state.Clone()
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}
