package cartsync

import (
	"context"
	"fmt"
)

// Mutation is what a sink receives after the reducer has run: the action that
// caused it, the state it produced, and the session active at the time.
type Mutation struct {
	Action  Action
	State   State
	Session Session
}

// Sink mirrors cart mutations somewhere outside the process.
type Sink interface {
	Persist(ctx context.Context, m Mutation) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, m Mutation) error

func (f SinkFunc) Persist(ctx context.Context, m Mutation) error { return f(ctx, m) }

// LocalSink overwrites the local store with the full line list.
type LocalSink struct {
	Store LocalStore
}

func NewLocalSink(store LocalStore) *LocalSink { return &LocalSink{Store: store} }

func (s *LocalSink) Persist(ctx context.Context, m Mutation) error {
	if err := s.Store.Save(ctx, m.State.Items); err != nil {
		return fmt.Errorf("save local cart: %w", err)
	}
	return nil
}

// CartWriter is the delta side of the remote cart endpoint.
type CartWriter interface {
	AddItem(ctx context.Context, token, productID string, quantity int) error
	SetItemQuantity(ctx context.Context, token, productID string, quantity int) error
	RemoveItem(ctx context.Context, token, productID string) error
	ClearCart(ctx context.Context, token string) error
}

// RemoteSink sends the delta implied by each action to the remote endpoint.
// Anonymous mutations are not sent.
type RemoteSink struct {
	Writer CartWriter
}

func NewRemoteSink(w CartWriter) *RemoteSink { return &RemoteSink{Writer: w} }

func (s *RemoteSink) Persist(ctx context.Context, m Mutation) error {
	if !m.Session.Authenticated() {
		return nil
	}
	token := m.Session.Token
	switch act := m.Action.(type) {
	case AddLine:
		qty := act.Quantity
		if qty <= 0 {
			qty = 1
		}
		return s.Writer.AddItem(ctx, token, act.Product.ID, qty)
	case SetQuantity:
		if act.Quantity <= 0 {
			return s.Writer.RemoveItem(ctx, token, act.ProductID)
		}
		return s.Writer.SetItemQuantity(ctx, token, act.ProductID, act.Quantity)
	case RemoveLine:
		return s.Writer.RemoveItem(ctx, token, act.ProductID)
	case Clear:
		return s.Writer.ClearCart(ctx, token)
	default:
		return nil
	}
}
