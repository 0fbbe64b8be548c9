package resultstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityrides/ride-matcher/internal/ridematch"
)

// fakeKVClient is an in-memory stand-in for pkg/redis.Client.
type fakeKVClient struct {
	data map[string]string
}

func newFakeKVClient() *fakeKVClient {
	return &fakeKVClient{data: make(map[string]string)}
}

func (f *fakeKVClient) SetWithExpiration(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	default:
		return errors.New("unsupported value type")
	}
	return nil
}

func (f *fakeKVClient) GetString(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return v, nil
}

func TestRedisStore_PutThenGetRoundTrips(t *testing.T) {
	client := newFakeKVClient()
	store := NewRedisStore(client)

	id := uuid.New()
	result := &ridematch.MatchingResult{
		ID:            id,
		TripDirection: ridematch.Outbound,
		StartLocation: ridematch.Coordinate{Lat: 40.0, Lng: -105.0},
	}

	require.NoError(t, store.Put(context.Background(), id, result))

	got, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, result.ID, got.ID)
	assert.Equal(t, result.TripDirection, got.TripDirection)
	assert.Equal(t, result.StartLocation, got.StartLocation)
}

func TestRedisStore_GetMissingKeyReturnsErrNotFound(t *testing.T) {
	client := newFakeKVClient()
	store := NewRedisStore(client)

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
