package idempotency

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, ttl), mr
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, time.Hour)

	rec, started, err := s.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, StateProcessing, rec.State)

	rec, started, err = s.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, StateProcessing, rec.State)

	resp := json.RawMessage(`{"ResponseCode":"0"}`)
	require.NoError(t, s.Complete(ctx, "k1", resp))

	rec, started, err = s.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, StateComplete, rec.State)
	assert.JSONEq(t, string(resp), string(rec.Response))
}

func TestStore_Release(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, time.Hour)

	_, started, err := s.Begin(ctx, "k1")
	require.NoError(t, err)
	require.True(t, started)

	require.NoError(t, s.Release(ctx, "k1"))

	_, started, err = s.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, started)
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t, time.Minute)

	_, started, err := s.Begin(ctx, "k1")
	require.NoError(t, err)
	require.True(t, started)

	mr.FastForward(2 * time.Minute)

	_, started, err = s.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, started)
}

func TestStore_RedisDown(t *testing.T) {
	s, mr := newTestStore(t, time.Minute)
	mr.Close()

	_, _, err := s.Begin(context.Background(), "k1")
	assert.Error(t, err)
}
