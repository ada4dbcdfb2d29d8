package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aevon-lab/pos-analytics/internal/signals"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCurrentTTL    = 30 * time.Minute
	DefaultHistoricalTTL = 7 * 24 * time.Hour
)

// Cached is a read-through cache in front of a WeatherProvider.
type Cached struct {
	next          signals.WeatherProvider
	store         Store
	currentTTL    time.Duration
	historicalTTL time.Duration
	group         singleflight.Group // dedupes concurrent misses per key
}

var _ signals.WeatherProvider = (*Cached)(nil)

// NewCached wraps next. Zero TTLs take the package defaults.
func NewCached(next signals.WeatherProvider, store Store, currentTTL, historicalTTL time.Duration) *Cached {
	if currentTTL <= 0 {
		currentTTL = DefaultCurrentTTL
	}
	if historicalTTL <= 0 {
		historicalTTL = DefaultHistoricalTTL
	}
	return &Cached{
		next:          next,
		store:         store,
		currentTTL:    currentTTL,
		historicalTTL: historicalTTL,
	}
}

func currentKey(locationID int) string {
	return fmt.Sprintf("current:%d", locationID)
}

func historicalKey(locationID int, day time.Time) string {
	return fmt.Sprintf("day:%d:%s", locationID, day.Format("2006-01-02"))
}

func (c *Cached) CurrentCondition(ctx context.Context, locationID int) (signals.Weather, error) {
	return c.load(ctx, currentKey(locationID), c.currentTTL, func() (signals.Weather, error) {
		return c.next.CurrentCondition(ctx, locationID)
	})
}

func (c *Cached) HistoricalCondition(ctx context.Context, locationID int, day time.Time) (signals.Weather, error) {
	return c.load(ctx, historicalKey(locationID, day), c.historicalTTL, func() (signals.Weather, error) {
		return c.next.HistoricalCondition(ctx, locationID, day)
	})
}

// Refresh fetches the current condition upstream and overwrites the cache entry.
func (c *Cached) Refresh(ctx context.Context, locationID int) (signals.Weather, error) {
	key := currentKey(locationID)
	v, err, _ := c.group.Do("refresh:"+key, func() (interface{}, error) {
		w, err := c.next.CurrentCondition(ctx, locationID)
		if err != nil {
			return nil, err
		}
		c.put(ctx, key, w, c.currentTTL)
		return w, nil
	})
	if err != nil {
		return "", err
	}
	return v.(signals.Weather), nil
}

func (c *Cached) load(ctx context.Context, key string, ttl time.Duration, fetch func() (signals.Weather, error)) (signals.Weather, error) {
	if w, ok := c.get(ctx, key); ok {
		return w, nil
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		// Another caller may have filled the entry while we waited.
		if w, ok := c.get(ctx, key); ok {
			return w, nil
		}
		w, err := fetch()
		if err != nil {
			return nil, err
		}
		c.put(ctx, key, w, ttl)
		return w, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		slog.Debug("[Weather] Shared in-flight lookup", "key", key)
	}
	return v.(signals.Weather), nil
}

// get treats store errors as misses.
func (c *Cached) get(ctx context.Context, key string) (signals.Weather, bool) {
	w, ok, err := c.store.Get(ctx, key)
	if err != nil {
		slog.Warn("[Weather] Cache read failed", "key", key, "error", err)
		return "", false
	}
	return w, ok
}

func (c *Cached) put(ctx context.Context, key string, w signals.Weather, ttl time.Duration) {
	if err := c.store.Set(ctx, key, w, ttl); err != nil {
		slog.Warn("[Weather] Cache write failed", "key", key, "error", err)
	}
}
