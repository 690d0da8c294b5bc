package conversation

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"farewise/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "search:ctx:"

// ContextStore persists one SearchContext per session id. A missing session
// yields a fresh context, never an error.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.SearchContext, error)
	Set(ctx context.Context, sessionID string, sc *models.SearchContext) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisContextStore stores each context as a JSON blob with a sliding TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.SearchContext, error) {
	key := sessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.NewSearchContext(), nil
	}
	if err != nil {
		return nil, err
	}
	var sc models.SearchContext
	if err := json.Unmarshal([]byte(data), &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, sc *models.SearchContext) error {
	key := sessionPrefix + sessionID
	b, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// MemoryContextStore is a map-backed store for tests and local runs without
// Redis. Contexts round-trip through JSON so that pointer state cannot leak
// between turns.
type MemoryContextStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{data: make(map[string][]byte)}
}

func (s *MemoryContextStore) Get(_ context.Context, sessionID string) (*models.SearchContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data[sessionID]
	if !ok {
		return models.NewSearchContext(), nil
	}
	var sc models.SearchContext
	if err := json.Unmarshal(b, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *MemoryContextStore) Set(_ context.Context, sessionID string, sc *models.SearchContext) error {
	b, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = b
	return nil
}

func (s *MemoryContextStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
