package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		Limit:   3,
		Window:  time.Hour, // refill too slow to matter in this test
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("client-a")
		require.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := limiter.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Hour})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("client-b")
	assert.True(t, allowed)
}

func TestLimiter_DisabledAlwaysAllows(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false, Limit: 1, Window: time.Hour})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("client-a")
		assert.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_REQUESTS", "")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_REQUESTS", "30")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "10")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 30, cfg.Limit)
	assert.Equal(t, 10*time.Second, cfg.Window)
}

func TestTokenBucket_Refills(t *testing.T) {
	// 100 tokens/second: draining one token is recovered almost instantly.
	bucket := newTokenBucket(1, 100)

	ok, _, _ := bucket.allow()
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	ok, _, _ = bucket.allow()
	assert.True(t, ok)
}
