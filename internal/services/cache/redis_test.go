package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("RECIPES_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("RECIPES_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	rc, err := NewRedisCache(ctx, RedisOptions{Addr: addr, KeyPrefix: "test:" + uuid.NewString() + ":"}, nil)
	require.NoError(t, err)
	defer rc.Close()

	_, ok := rc.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, rc.Set(ctx, "k", []byte("v"), time.Minute))
	got, ok := rc.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, rc.Delete(ctx, "k"))
	_, ok = rc.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNewRedisCache_BadURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), RedisOptions{URL: "not a url"}, nil)
	assert.Error(t, err)
}
