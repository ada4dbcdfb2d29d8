package weather

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	signalsmocks "github.com/aevon-lab/pos-analytics/internal/mocks/signals"
	"github.com/aevon-lab/pos-analytics/internal/signals"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ExpiryAndEviction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	s := NewMemoryStore(2)
	s.nowFn = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "a", signals.Sunny, time.Minute))
	require.NoError(t, s.Set(ctx, "b", signals.Rainy, time.Hour))

	w, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, signals.Sunny, w)

	// "a" was used last, so "b" is evicted.
	require.NoError(t, s.Set(ctx, "c", signals.Cloudy, time.Hour))
	_, ok, _ = s.Get(ctx, "b")
	require.False(t, ok)
	require.Equal(t, 2, s.Len())

	now = now.Add(2 * time.Minute)
	_, ok, _ = s.Get(ctx, "a")
	require.False(t, ok)
	require.Equal(t, 1, s.Len())
}

func TestCached_ReadThrough(t *testing.T) {
	ctx := context.Background()
	provider := signalsmocks.NewWeatherProvider(t)
	provider.EXPECT().CurrentCondition(mock.Anything, 1).Return(signals.Sunny, nil).Once()

	c := NewCached(provider, NewMemoryStore(8), time.Hour, 0)

	for i := 0; i < 3; i++ {
		w, err := c.CurrentCondition(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, signals.Sunny, w)
	}
}

func TestCached_HistoricalKeyedByDay(t *testing.T) {
	ctx := context.Background()
	d1 := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 7)

	provider := signalsmocks.NewWeatherProvider(t)
	provider.EXPECT().HistoricalCondition(mock.Anything, 1, d1).Return(signals.Rainy, nil).Once()
	provider.EXPECT().HistoricalCondition(mock.Anything, 1, d2).Return(signals.Sunny, nil).Once()

	c := NewCached(provider, NewMemoryStore(8), 0, 0)

	for i := 0; i < 2; i++ {
		w, err := c.HistoricalCondition(ctx, 1, d1)
		require.NoError(t, err)
		require.Equal(t, signals.Rainy, w)

		w, err = c.HistoricalCondition(ctx, 1, d2)
		require.NoError(t, err)
		require.Equal(t, signals.Sunny, w)
	}
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	provider := signalsmocks.NewWeatherProvider(t)
	provider.EXPECT().CurrentCondition(mock.Anything, 1).Return(signals.Weather(""), errors.New("upstream down")).Once()
	provider.EXPECT().CurrentCondition(mock.Anything, 1).Return(signals.Cloudy, nil).Once()

	c := NewCached(provider, NewMemoryStore(8), time.Hour, 0)

	_, err := c.CurrentCondition(ctx, 1)
	require.ErrorContains(t, err, "upstream down")

	w, err := c.CurrentCondition(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, signals.Cloudy, w)
}

func TestCached_ConcurrentMissesShareOneFetch(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})

	provider := signalsmocks.NewWeatherProvider(t)
	provider.EXPECT().CurrentCondition(mock.Anything, 2).
		RunAndReturn(func(context.Context, int) (signals.Weather, error) {
			<-release
			return signals.Rainy, nil
		}).Once()

	c := NewCached(provider, NewMemoryStore(8), time.Hour, 0)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]signals.Weather, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.CurrentCondition(ctx, 2)
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, w := range results {
		require.NoError(t, errs[i])
		require.Equal(t, signals.Rainy, w)
	}
}

func TestCached_RefreshOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(8)
	require.NoError(t, store.Set(ctx, currentKey(1), signals.Sunny, time.Hour))

	provider := signalsmocks.NewWeatherProvider(t)
	provider.EXPECT().CurrentCondition(mock.Anything, 1).Return(signals.Rainy, nil).Once()

	c := NewCached(provider, store, time.Hour, 0)

	w, err := c.Refresh(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, signals.Rainy, w)

	w, err = c.CurrentCondition(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, signals.Rainy, w)
}

func TestCached_UnreachableRedisFallsThrough(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	provider := signalsmocks.NewWeatherProvider(t)
	provider.EXPECT().CurrentCondition(mock.Anything, 1).Return(signals.Cloudy, nil).Once()

	c := NewCached(provider, NewRedisStore(client, ""), time.Hour, 0)

	w, err := c.CurrentCondition(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, signals.Cloudy, w)
}

func TestWarmer_RefreshesEveryLocation(t *testing.T) {
	ctx := context.Background()
	provider := signalsmocks.NewWeatherProvider(t)
	provider.EXPECT().CurrentCondition(mock.Anything, 1).Return(signals.Sunny, nil).Once()
	provider.EXPECT().CurrentCondition(mock.Anything, 2).Return(signals.Weather(""), errors.New("timeout")).Once()
	provider.EXPECT().CurrentCondition(mock.Anything, 3).Return(signals.Rainy, nil).Once()

	store := NewMemoryStore(8)
	w := NewWarmer(time.Minute, NewCached(provider, store, time.Hour, 0), []int{1, 2, 3})

	require.Equal(t, 2, w.warm(ctx))
	require.Equal(t, 2, store.Len())
}

func TestWarmer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := signalsmocks.NewWeatherProvider(t)
	w := NewWarmer(time.Hour, NewCached(provider, NewMemoryStore(8), time.Hour, 0), []int{1})

	require.NoError(t, w.Start(ctx))
}
