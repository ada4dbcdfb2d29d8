package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
)

// ErrDuplicate is returned when a sale with the same id already exists.
var ErrDuplicate = errors.New("sale already exists")

// ErrNotFound is returned when a sale id does not exist.
var ErrNotFound = errors.New("sale not found")

// Filter narrows FetchMatching. Zero fields do not filter.
type Filter struct {
	LocationID    int
	PaymentMethod v1.PaymentMethod
	Since         time.Time // created_at >= Since
	Before        time.Time // created_at < Before
	Limit         int
}

// Ledger is the raw sale record store. Every fetch returns sales newest
// first; limit <= 0 means no limit.
type Ledger interface {
	FetchAll(ctx context.Context, limit int) ([]*v1.Sale, error)
	FetchByLocation(ctx context.Context, locationID int, limit int) ([]*v1.Sale, error)
	FetchMatching(ctx context.Context, filter Filter) ([]*v1.Sale, error)

	// SaveSale returns ErrDuplicate when the id is taken.
	SaveSale(ctx context.Context, sale *v1.Sale) error

	// DeleteSale hard-deletes a sale. Returns ErrNotFound for unknown ids.
	DeleteSale(ctx context.Context, id string) error

	Ping(ctx context.Context) error
}
