// Package ratelimit caps admitted requests per client identity within a
// rolling window, independently per endpoint class. The window starts at the
// first request from a client, not at wall-clock boundaries.
package ratelimit

import "time"

// Config is the static policy for one endpoint class. It is immutable for
// the lifetime of the process.
type Config struct {
	// Limit is the maximum number of requests per window.
	Limit int
	// Window is the rolling window length.
	Window time.Duration
	// Prefix namespaces keys so endpoint classes do not share quota.
	Prefix string
}

// Result reports an admission decision. ResetAt lets callers compute a
// Retry-After duration on rejection.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter admits or rejects a request for the given client identity under
// the given policy. Implementations must be safe for concurrent use.
type Limiter interface {
	Check(clientID string, config Config, now time.Time) Result
}

// Policy table. These values are the governing contract for the deployed
// endpoints, not tuning suggestions.
var (
	// ContactPolicy governs the contact form: 10 requests per 10 minutes.
	ContactPolicy = Config{Limit: 10, Window: 10 * time.Minute, Prefix: "contact"}
	// ToolsPolicy governs the AI generation tools: 30 requests per 10 minutes.
	ToolsPolicy = Config{Limit: 30, Window: 10 * time.Minute, Prefix: "tools"}
)
