package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewMemoryLimiter()
	config := Config{Limit: 3, Window: time.Minute, Prefix: "test"}
	now := time.Now()

	for i := 0; i < 3; i++ {
		result := limiter.Check("1.2.3.4", config, now)
		require.True(t, result.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 2-i, result.Remaining)
	}

	result := limiter.Check("1.2.3.4", config, now)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
}

func TestMemoryLimiter_WindowAnchorsToFirstRequest(t *testing.T) {
	limiter := NewMemoryLimiter()
	config := Config{Limit: 2, Window: 10 * time.Minute, Prefix: "test"}
	start := time.Now()

	first := limiter.Check("1.2.3.4", config, start)
	require.True(t, first.Allowed)
	assert.Equal(t, start.Add(10*time.Minute), first.ResetAt)

	// A later request in the same window must not move the reset time.
	second := limiter.Check("1.2.3.4", config, start.Add(5*time.Minute))
	require.True(t, second.Allowed)
	assert.Equal(t, first.ResetAt, second.ResetAt)
}

func TestMemoryLimiter_RejectionDoesNotExtendWindow(t *testing.T) {
	limiter := NewMemoryLimiter()
	config := Config{Limit: 1, Window: 10 * time.Minute, Prefix: "test"}
	start := time.Now()

	limiter.Check("1.2.3.4", config, start)

	rejected := limiter.Check("1.2.3.4", config, start.Add(time.Minute))
	require.False(t, rejected.Allowed)
	assert.Equal(t, start.Add(10*time.Minute), rejected.ResetAt)

	// Exactly at expiry the entry is stale and a new window begins.
	fresh := limiter.Check("1.2.3.4", config, start.Add(10*time.Minute))
	assert.True(t, fresh.Allowed)
	assert.Equal(t, start.Add(20*time.Minute), fresh.ResetAt)
}

func TestMemoryLimiter_PrefixesAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter()
	now := time.Now()
	contact := Config{Limit: 1, Window: time.Minute, Prefix: "contact"}
	tools := Config{Limit: 1, Window: time.Minute, Prefix: "tools"}

	require.True(t, limiter.Check("1.2.3.4", contact, now).Allowed)
	require.False(t, limiter.Check("1.2.3.4", contact, now).Allowed)

	// Exhausting the contact quota must not touch the tools quota.
	assert.True(t, limiter.Check("1.2.3.4", tools, now).Allowed)
}

func TestMemoryLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter()
	config := Config{Limit: 1, Window: time.Minute, Prefix: "test"}
	now := time.Now()

	require.True(t, limiter.Check("1.2.3.4", config, now).Allowed)
	require.False(t, limiter.Check("1.2.3.4", config, now).Allowed)
	assert.True(t, limiter.Check("5.6.7.8", config, now).Allowed)
}

func TestMemoryLimiter_SweepRemovesExpiredEntries(t *testing.T) {
	limiter := NewMemoryLimiter()
	config := Config{Limit: 5, Window: time.Minute, Prefix: "test"}
	start := time.Now()

	for i := 0; i < 10; i++ {
		limiter.Check(fmt.Sprintf("10.0.0.%d", i), config, start)
	}
	require.Equal(t, 10, limiter.Len())

	// Past both the window and the sweep interval, a single access from a
	// fresh client collects everything stale.
	limiter.Check("10.0.1.1", config, start.Add(2*time.Minute))
	assert.Equal(t, 1, limiter.Len())
}

func TestMemoryLimiter_ConcurrentChecksNeverExceedLimit(t *testing.T) {
	limiter := NewMemoryLimiter()
	config := Config{Limit: 30, Window: time.Minute, Prefix: "test"}
	now := time.Now()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Check("1.2.3.4", config, now).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, allowed)
}

func TestPolicyTable(t *testing.T) {
	assert.Equal(t, 10, ContactPolicy.Limit)
	assert.Equal(t, 10*time.Minute, ContactPolicy.Window)
	assert.Equal(t, "contact", ContactPolicy.Prefix)

	assert.Equal(t, 30, ToolsPolicy.Limit)
	assert.Equal(t, 10*time.Minute, ToolsPolicy.Window)
	assert.Equal(t, "tools", ToolsPolicy.Prefix)
}
