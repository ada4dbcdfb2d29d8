package weather

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aevon-lab/pos-analytics/internal/signals"
	"github.com/redis/go-redis/v9"
)

// Store holds cached sky conditions. A miss returns ok == false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (signals.Weather, bool, error)
	Set(ctx context.Context, key string, w signals.Weather, ttl time.Duration) error
}

// MemoryStore is a thread-safe LRU with per-entry expiry.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List
	nowFn    func() time.Time
}

type memoryEntry struct {
	key       string
	weather   signals.Weather
	expiresAt time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 256
	}
	return &MemoryStore{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		nowFn:    time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (signals.Weather, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	entry := elem.Value.(*memoryEntry)
	if !s.nowFn().Before(entry.expiresAt) {
		delete(s.entries, key)
		s.order.Remove(elem)
		return "", false, nil
	}

	s.order.MoveToFront(elem)
	return entry.weather, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, w signals.Weather, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.nowFn().Add(ttl)

	if elem, ok := s.entries[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.weather = w
		entry.expiresAt = expiresAt
		s.order.MoveToFront(elem)
		return nil
	}

	if s.order.Len() >= s.capacity {
		if oldest := s.order.Back(); oldest != nil {
			delete(s.entries, oldest.Value.(*memoryEntry).key)
			s.order.Remove(oldest)
		}
	}

	s.entries[key] = s.order.PushFront(&memoryEntry{key: key, weather: w, expiresAt: expiresAt})
	return nil
}

// Len reports the number of entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// RedisStore keeps conditions in Redis under a key prefix.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "pos:weather:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (signals.Weather, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}

	w := signals.Weather(val)
	if !w.Valid() {
		return "", false, nil
	}
	return w, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, w signals.Weather, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, string(w), ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
