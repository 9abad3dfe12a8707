// Package security emits structured, PII-free records of admission decisions.
// Records must never contain user-submitted free text; only derived facts
// such as lengths, counts, durations, and status codes belong in details.
package security

import (
	"net/http"

	"timedpost/internal/shared/logger"
	"timedpost/internal/shared/utils"
)

// EventType enumerates the admission decisions worth recording.
type EventType string

const (
	EventValidationFailure EventType = "validation_failure"
	EventRateLimitExceeded EventType = "rate_limit_exceeded"
	EventOriginRejected    EventType = "origin_rejected"
	EventHoneypotTriggered EventType = "honeypot_triggered"
	EventTimingCheckFailed EventType = "timing_check_failed"
	EventAPIError          EventType = "api_error"
)

// LogEvent records a security event with the best-effort client identity and
// request path. Output format follows the process logger: single-line JSON in
// production, an abbreviated console line otherwise. It never fails and never
// blocks the request path.
func LogEvent(log logger.Interface, r *http.Request, event EventType, details map[string]any) {
	args := []any{
		"type", string(event),
		"ip", utils.ClientIP(r),
		"path", r.URL.Path,
	}
	for k, v := range details {
		args = append(args, k, v)
	}
	log.Warnw("security event", args...)
}
