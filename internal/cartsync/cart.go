package cartsync

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Config wires a Cart to its collaborators. Nil sinks and a nil loader are
// allowed; they are simply skipped.
type Config struct {
	Local  Sink
	Remote Sink
	Loader *Loader
	Logger *zap.Logger
}

type namedSink struct {
	name string
	sink Sink
}

// Cart is the sync adapter in front of a Store. Every mutation is applied to
// the store first and returned immediately; the sinks are then written in the
// background and their failures are only logged.
type Cart struct {
	store  *Store
	sinks  []namedSink
	loader *Loader
	logger *zap.Logger

	mu       sync.Mutex
	session  Session
	started  bool
	inflight sync.WaitGroup
}

// NewCart builds a Cart around store.
func NewCart(store *Store, cfg Config) *Cart {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cart{store: store, loader: cfg.Loader, logger: logger}
	if cfg.Local != nil {
		c.sinks = append(c.sinks, namedSink{name: "local", sink: cfg.Local})
	}
	if cfg.Remote != nil {
		c.sinks = append(c.sinks, namedSink{name: "remote", sink: cfg.Remote})
	}
	return c
}

// State returns the current cart.
func (c *Cart) State() State { return c.store.State() }

// Session returns the session used for outbound remote writes.
func (c *Cart) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// SetSession installs s and bootstraps the cart when this is the first
// session seen or when the identity differs from the previous one. It returns
// the loader phase after the call.
func (c *Cart) SetSession(ctx context.Context, s Session) Phase {
	c.mu.Lock()
	changed := !c.started || c.session.Identity() != s.Identity()
	c.session = s
	c.started = true
	c.mu.Unlock()

	if c.loader == nil {
		return PhaseUninitialized
	}
	if !changed {
		return c.loader.Phase()
	}
	return c.loader.Bootstrap(ctx, c.store, s)
}

func (c *Cart) AddToCart(p Product, quantity int) State {
	return c.apply(AddLine{Product: p, Quantity: quantity})
}

func (c *Cart) RemoveFromCart(productID string) State {
	return c.apply(RemoveLine{ProductID: productID})
}

func (c *Cart) UpdateQuantity(productID string, quantity int) State {
	return c.apply(SetQuantity{ProductID: productID, Quantity: quantity})
}

func (c *Cart) ClearCart() State {
	return c.apply(Clear{})
}

// Wait blocks until every background write fired so far has finished.
func (c *Cart) Wait() { c.inflight.Wait() }

func (c *Cart) apply(a Action) State {
	st := c.store.Dispatch(a)
	m := Mutation{Action: a, State: st.Clone(), Session: c.Session()}
	for _, ns := range c.sinks {
		c.inflight.Add(1)
		go c.persist(ns, m)
	}
	return st
}

func (c *Cart) persist(ns namedSink, m Mutation) {
	defer c.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("cart sink panicked",
				zap.String("sink", ns.name),
				zap.String("action", ActionName(m.Action)),
				zap.String("panic", fmt.Sprint(r)))
		}
	}()
	if err := ns.sink.Persist(context.Background(), m); err != nil {
		c.logger.Warn("cart sync failed",
			zap.String("sink", ns.name),
			zap.String("action", ActionName(m.Action)),
			zap.Error(err))
		return
	}
	c.logger.Debug("cart synced",
		zap.String("sink", ns.name),
		zap.String("action", ActionName(m.Action)),
		zap.Int("items", len(m.State.Items)))
}
