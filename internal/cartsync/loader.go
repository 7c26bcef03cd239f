package cartsync

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Phase is the bootstrap state machine.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseHydratedRemote
	PhaseHydratedLocal
	PhaseEmpty
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseLoading:
		return "loading"
	case PhaseHydratedRemote:
		return "hydrated_remote"
	case PhaseHydratedLocal:
		return "hydrated_local"
	case PhaseEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// RemoteRow is one row of the remote cart read. It carries no stock.
type RemoteRow struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Brand     Brand  `json:"brand"`
	Quantity  int    `json:"quantity"`
}

// CartReader is the read side of the remote cart endpoint.
type CartReader interface {
	FetchCart(ctx context.Context, token string) ([]RemoteRow, error)
}

// Loader hydrates a Store at session start, preferring the remote cart and
// falling back to the local store.
type Loader struct {
	remote CartReader
	local  LocalStore
	logger *zap.Logger

	mu    sync.Mutex
	phase Phase
}

// NewLoader returns a loader. Either source may be nil.
func NewLoader(remote CartReader, local LocalStore, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{remote: remote, local: local, logger: logger}
}

// Phase reports where the last bootstrap ended up.
func (l *Loader) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

func (l *Loader) setPhase(p Phase) {
	l.mu.Lock()
	l.phase = p
	l.mu.Unlock()
}

// Bootstrap populates store for session. It never fails: an unreachable or
// empty source simply leads to the next one, and an empty cart is a valid end
// state. Whatever the store held before is discarded, so a cart never carries
// over from one identity to the next. A remote cart is mirrored to the local
// store so the local copy tracks the signed-in cart.
func (l *Loader) Bootstrap(ctx context.Context, store *Store, session Session) Phase {
	l.setPhase(PhaseLoading)

	if session.Authenticated() && l.remote != nil {
		rows, err := l.remote.FetchCart(ctx, session.Token)
		if err == nil {
			st := store.Dispatch(Replace{Lines: linesFromRows(rows)})
			l.logger.Info("cart hydrated from remote", zap.Int("lines", len(rows)))
			if l.local != nil {
				if err := l.local.Save(ctx, st.Items); err != nil {
					l.logger.Warn("mirroring remote cart locally failed", zap.Error(err))
				}
			}
			l.setPhase(PhaseHydratedRemote)
			return PhaseHydratedRemote
		}
		l.logger.Warn("remote cart fetch failed, using local cart", zap.Error(err))
	}

	if l.local != nil {
		lines, err := l.local.Load(ctx)
		switch {
		case err != nil:
			l.logger.Warn("local cart unreadable", zap.Error(err))
		case lines != nil:
			store.Dispatch(Replace{Lines: lines})
			l.logger.Info("cart hydrated from local store", zap.Int("lines", len(lines)))
			l.setPhase(PhaseHydratedLocal)
			return PhaseHydratedLocal
		}
	}

	store.Dispatch(Clear{})
	l.setPhase(PhaseEmpty)
	return PhaseEmpty
}

func linesFromRows(rows []RemoteRow) []Line {
	lines := make([]Line, 0, len(rows))
	for _, r := range rows {
		qty := r.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, Line{
			Product: Product{
				ID:       r.ProductID,
				Name:     r.Name,
				Price:    r.Price,
				Image:    r.Image,
				Category: r.Category,
				Brand:    r.Brand,
				Stock:    SentinelStock,
			},
			Quantity: qty,
		})
	}
	return lines
}
