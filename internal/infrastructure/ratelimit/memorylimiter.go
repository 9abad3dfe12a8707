package ratelimit

import (
	"sync"
	"time"
)

// sweepInterval bounds how often expired entries are collected. The sweep is
// lazy: it runs inline on whichever Check call finds it overdue, so no
// background task is needed.
const sweepInterval = 60 * time.Second

type entry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a process-local fixed-window limiter backed by a
// mutex-guarded map. In a horizontally scaled deployment each instance
// enforces its own quota, so the effective global limit is limit times the
// instance count. That trade-off is deliberate; use RedisLimiter when a
// shared quota is required.
type MemoryLimiter struct {
	mu        sync.Mutex
	entries   map[string]*entry
	lastSweep time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		entries:   make(map[string]*entry),
		lastSweep: time.Now(),
	}
}

var _ Limiter = (*MemoryLimiter)(nil)

// Check runs the read-check-increment sequence under a single lock so
// concurrent requests cannot jointly exceed the limit.
func (l *MemoryLimiter) Check(clientID string, config Config, now time.Time) Result {
	key := config.Prefix + ":" + clientID

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweepExpired(now)

	e, ok := l.entries[key]

	// No existing entry, or the window elapsed: start a fresh window.
	// Expired entries are replaced, never merged.
	if !ok || !e.resetAt.After(now) {
		resetAt := now.Add(config.Window)
		l.entries[key] = &entry{count: 1, resetAt: resetAt}
		return Result{Allowed: true, Remaining: config.Limit - 1, ResetAt: resetAt}
	}

	if e.count >= config.Limit {
		return Result{Allowed: false, Remaining: 0, ResetAt: e.resetAt}
	}

	e.count++
	return Result{Allowed: true, Remaining: config.Limit - e.count, ResetAt: e.resetAt}
}

// sweepExpired drops entries whose window has passed. Caller must hold the lock.
func (l *MemoryLimiter) sweepExpired(now time.Time) {
	if now.Sub(l.lastSweep) < sweepInterval {
		return
	}
	l.lastSweep = now
	for key, e := range l.entries {
		if !e.resetAt.After(now) {
			delete(l.entries, key)
		}
	}
}

// Len reports the number of tracked entries. Intended for tests and
// diagnostics only.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
