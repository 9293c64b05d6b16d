package ratelimit

import (
	"context"
	"flag"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runRedis = flag.Bool("redis", false, "Run rate limiter tests against REDIS_ADDR")

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryLimiter_BurstThenRefill(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewMemoryLimiter(60, 2)
	l.now = clock.now
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d within burst", i)
	}

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.InDelta(t, time.Second, d.RetryAfter, float64(50*time.Millisecond))

	other, err := l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "keys are independent")

	clock.advance(time.Second)
	d, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "one token refilled after a second")
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewMemoryLimiter(60, 1)
	l.now = clock.now

	_, _ = l.Allow(context.Background(), "a")
	clock.advance(10 * time.Minute)
	_, _ = l.Allow(context.Background(), "b")

	assert.Equal(t, 1, l.Sweep(5*time.Minute))
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "b")
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	if !*runRedis {
		t.Skip("Skipping Redis test (use -redis flag to run)")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := goredis.NewClient(&goredis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(context.Background()).Err())

	clock := &fakeClock{t: time.Now().Truncate(time.Minute).Add(10 * time.Second)}
	l := NewRedisLimiter(client, 3)
	l.now = clock.now
	key := "test-" + clock.t.Format("150405.000000000")

	for i := 0; i < 3; i++ {
		d, err := l.Allow(context.Background(), key)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}

	d, err := l.Allow(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 50*time.Second, d.RetryAfter)
}
