package ratelimiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestLimiter(limit int, interval time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, interval)
	rl.now = clock.now
	return rl, clock
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()
	rl, _ := newTestLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("user@example.com"), "attempt %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("user@example.com"))
	assert.False(t, rl.Allow("user@example.com"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()
	rl, _ := newTestLimiter(1, time.Minute)

	assert.True(t, rl.Allow("a@example.com"))
	assert.False(t, rl.Allow("a@example.com"))
	assert.True(t, rl.Allow("b@example.com"))
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	t.Parallel()
	rl, clock := newTestLimiter(2, time.Minute)

	assert.True(t, rl.Allow("k"))
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	clock.t = clock.t.Add(59 * time.Second)
	assert.False(t, rl.Allow("k"))

	clock.t = clock.t.Add(time.Second)
	assert.True(t, rl.Allow("k"))
}

func TestRateLimiter_Reset(t *testing.T) {
	t.Parallel()
	rl, _ := newTestLimiter(1, time.Minute)

	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	rl.Reset("k")
	assert.True(t, rl.Allow("k"))
	rl.Reset("unknown")
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
	}{
		{"zero", 0},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rl, _ := newTestLimiter(tt.limit, time.Minute)
			for i := 0; i < 100; i++ {
				assert.True(t, rl.Allow("k"))
			}
		})
	}
}

func TestRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()
	rl, _ := newTestLimiter(50, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("k") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
