package weather

import (
	"context"
	"log/slog"
	"time"
)

// Warmer keeps the current condition of every location hot in the cache.
type Warmer struct {
	interval  time.Duration
	cache     *Cached
	locations []int
}

func NewWarmer(interval time.Duration, cache *Cached, locations []int) *Warmer {
	ids := make([]int, len(locations))
	copy(ids, locations)
	return &Warmer{interval: interval, cache: cache, locations: ids}
}

// Start refreshes once, then on every tick until ctx is cancelled.
func (w *Warmer) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("[Warmer] Starting weather cache warmer",
		"interval", w.interval,
		"locations", len(w.locations))

	w.warm(ctx)

	for {
		select {
		case <-ticker.C:
			w.warm(ctx)
		case <-ctx.Done():
			slog.Info("[Warmer] Stopping (context cancelled)")
			return nil
		}
	}
}

// warm returns the number of locations refreshed.
func (w *Warmer) warm(ctx context.Context) int {
	refreshed := 0
	for _, id := range w.locations {
		if ctx.Err() != nil {
			return refreshed
		}
		cond, err := w.cache.Refresh(ctx, id)
		if err != nil {
			slog.Warn("[Warmer] Refresh failed", "location_id", id, "error", err)
			continue
		}
		refreshed++
		slog.Debug("[Warmer] Refreshed", "location_id", id, "weather", cond)
	}
	return refreshed
}
