package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRateLimiter_WaitForHost(t *testing.T) {
	limiter := NewHostRateLimiter(100 * time.Millisecond)
	ctx := context.Background()

	t.Run("rejects URL without host", func(t *testing.T) {
		assert.Error(t, limiter.WaitForHost(ctx, "not-a-url"))
		assert.Error(t, limiter.WaitForHost(ctx, ""))
	})

	t.Run("first request per host is immediate", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, limiter.WaitForHost(ctx, "https://api.github.com/user/starred"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("same host is spaced, other hosts are not", func(t *testing.T) {
		limiter := NewHostRateLimiter(200 * time.Millisecond)

		require.NoError(t, limiter.WaitForHost(ctx, "https://api.feedbin.com/v2/starred_entries.json"))

		start := time.Now()
		require.NoError(t, limiter.WaitForHost(ctx, "https://api.feedbin.com/v2/entries.json"))
		assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)

		start = time.Now()
		require.NoError(t, limiter.WaitForHost(ctx, "https://api.github.com/user/starred"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})
}

func TestHostRateLimiter_ContextCancellation(t *testing.T) {
	limiter := NewHostRateLimiter(1 * time.Second)
	url := "https://news.ycombinator.example/api/users/pg"

	require.NoError(t, limiter.WaitForHost(context.Background(), url))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := limiter.WaitForHost(ctx, url)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestHostRateLimiter_ConcurrentAccess(t *testing.T) {
	limiter := NewHostRateLimiter(10 * time.Millisecond)
	ctx := context.Background()

	done := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			done <- limiter.WaitForHost(ctx, "https://api.github.com/user/starred")
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-done)
	}
}
