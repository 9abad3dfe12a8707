package utils

import (
	"net/http"
	"strings"
)

// UnknownClient is the sentinel identity used when no forwarding header is
// present. Without a trusted edge proxy all such clients share one rate-limit
// bucket; this is an accepted limitation.
const UnknownClient = "unknown"

// ClientIP extracts the best-effort client identity from proxy headers.
// The left-most X-Forwarded-For entry is treated as the original client in
// the proxy chain. These headers are client-supplied: the value is an
// abuse-tracking key, not an authentication claim.
func ClientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}

	if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}

	// Vercel-specific header
	if vercelForwardedFor := r.Header.Get("X-Vercel-Forwarded-For"); vercelForwardedFor != "" {
		return strings.TrimSpace(strings.Split(vercelForwardedFor, ",")[0])
	}

	return UnknownClient
}
