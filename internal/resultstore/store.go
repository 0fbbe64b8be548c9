// Package resultstore persists matching results behind an opaque
// key-value interface, as spec.md §6 describes the results sink: "put(id,
// result)", "get(id) -> result?", opaque to the core.
package resultstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/communityrides/ride-matcher/internal/ridematch"
)

// DefaultTTL is how long a stored result stays retrievable.
const DefaultTTL = 24 * time.Hour

// Store is the opaque key-value sink the core hands results to. Never read
// by the core itself; only the HTTP transport layer uses it.
type Store interface {
	Put(ctx context.Context, id uuid.UUID, result *ridematch.MatchingResult) error
	Get(ctx context.Context, id uuid.UUID) (*ridematch.MatchingResult, error)
}

// ErrNotFound is returned by Get when no result exists for the given id.
var ErrNotFound = fmt.Errorf("result not found")

// kvClient is the subset of pkg/redis.ClientInterface the store needs.
type kvClient interface {
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
}

// RedisStore backs Store with redis/go-redis/v9, grounded on the teacher's
// pkg/redis wrapping pattern.
type RedisStore struct {
	client kvClient
	ttl    time.Duration
}

// NewRedisStore constructs a RedisStore with DefaultTTL.
func NewRedisStore(client kvClient) *RedisStore {
	return &RedisStore{client: client, ttl: DefaultTTL}
}

func resultKey(id uuid.UUID) string {
	return "ridematch:result:" + id.String()
}

// Put serializes and stores a matching result keyed by its UUID.
func (s *RedisStore) Put(ctx context.Context, id uuid.UUID, result *ridematch.MatchingResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal matching result: %w", err)
	}
	return s.client.SetWithExpiration(ctx, resultKey(id), payload, s.ttl)
}

// Get retrieves and deserializes a previously stored matching result.
func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*ridematch.MatchingResult, error) {
	raw, err := s.client.GetString(ctx, resultKey(id))
	if err != nil {
		return nil, ErrNotFound
	}

	var result ridematch.MatchingResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("unmarshal matching result: %w", err)
	}
	return &result, nil
}
