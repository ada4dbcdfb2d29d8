package memory

import (
	"context"
	"sort"
	"sync"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/aevon-lab/pos-analytics/internal/core/storage"
)

// Ledger is an in-process storage.Ledger. Sales are copied on the way in
// and out so callers never share records with the store.
type Ledger struct {
	mu    sync.RWMutex
	sales map[string]*v1.Sale
}

var _ storage.Ledger = (*Ledger)(nil)

func NewLedger() *Ledger {
	return &Ledger{sales: make(map[string]*v1.Sale)}
}

func (l *Ledger) FetchAll(ctx context.Context, limit int) ([]*v1.Sale, error) {
	return l.FetchMatching(ctx, storage.Filter{Limit: limit})
}

func (l *Ledger) FetchByLocation(ctx context.Context, locationID int, limit int) ([]*v1.Sale, error) {
	return l.FetchMatching(ctx, storage.Filter{LocationID: locationID, Limit: limit})
}

func (l *Ledger) FetchMatching(ctx context.Context, f storage.Filter) ([]*v1.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	out := make([]*v1.Sale, 0, len(l.sales))
	for _, s := range l.sales {
		if matches(s, f) {
			out = append(out, clone(s))
		}
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (l *Ledger) SaveSale(ctx context.Context, sale *v1.Sale) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.sales[sale.ID]; exists {
		return storage.ErrDuplicate
	}
	l.sales[sale.ID] = clone(sale)
	return nil
}

func (l *Ledger) DeleteSale(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.sales[id]; !exists {
		return storage.ErrNotFound
	}
	delete(l.sales, id)
	return nil
}

func (l *Ledger) Ping(ctx context.Context) error {
	return ctx.Err()
}

func matches(s *v1.Sale, f storage.Filter) bool {
	if f.LocationID != 0 && s.LocationID != f.LocationID {
		return false
	}
	if f.PaymentMethod != "" && s.PaymentMethod != f.PaymentMethod {
		return false
	}
	if !f.Since.IsZero() && s.CreatedAt.Before(f.Since) {
		return false
	}
	if !f.Before.IsZero() && !s.CreatedAt.Before(f.Before) {
		return false
	}
	return true
}

func clone(s *v1.Sale) *v1.Sale {
	c := *s
	c.Items = append([]v1.LineItem(nil), s.Items...)
	if s.PaymentBreakdown != nil {
		c.PaymentBreakdown = append([]v1.PaymentPart(nil), s.PaymentBreakdown...)
	}
	return &c
}
