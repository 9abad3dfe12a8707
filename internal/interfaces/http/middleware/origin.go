package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"timedpost/internal/shared/logger"
	"timedpost/internal/shared/security"
	"timedpost/internal/shared/utils"
)

// productionOrigin is always allowed, independent of configuration.
const productionOrigin = "https://timed-post-lp.vercel.app"

// BuildAllowedOrigins assembles the origin allow-list from the fixed
// production origin, the configured site URL, and any additional origins.
// Trailing slashes are stripped so configuration typos do not lock the
// frontend out.
func BuildAllowedOrigins(baseURL string, additional []string) []string {
	origins := []string{productionOrigin}
	if baseURL != "" {
		origins = append(origins, strings.TrimRight(baseURL, "/"))
	}
	for _, o := range additional {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// OriginCheck rejects cross-site POSTs with a bare 403. The decision is made
// by originAllowed; this wrapper only translates it to the wire and records
// the rejection.
func OriginCheck(allowed []string, devMode bool, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		host := c.Request.Host

		if originAllowed(origin, host, allowed, devMode) {
			c.Next()
			return
		}

		security.LogEvent(log, c.Request, security.EventOriginRejected, map[string]any{
			"has_origin": origin != "",
		})
		utils.ErrorResponse(c, http.StatusForbidden, "Forbidden")
		c.Abort()
	}
}

// originAllowed implements the admission decision for one request. In dev
// mode, missing and loopback origins pass unconditionally. With an Origin
// header present the allow-list governs: exact match, prefix match with a
// trailing slash, or a schemeless match. Without one, the Host header is
// checked against the schemeless allow-list (ports tolerated, localhost
// always fine); a request with neither header passes.
func originAllowed(origin, host string, allowed []string, devMode bool) bool {
	if devMode {
		if origin == "" || strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1") {
			return true
		}
	}

	if origin != "" {
		for _, a := range allowed {
			if origin == a || strings.HasPrefix(origin, a+"/") || stripScheme(origin) == stripScheme(a) {
				return true
			}
		}
		return false
	}

	if host != "" {
		if host == "localhost" || strings.HasPrefix(host, "localhost:") {
			return true
		}
		for _, a := range allowed {
			allowedHost := stripScheme(a)
			if host == allowedHost || strings.HasPrefix(host, allowedHost+":") {
				return true
			}
		}
		return devMode
	}

	return true
}

func stripScheme(s string) string {
	s = strings.TrimPrefix(s, "https://")
	return strings.TrimPrefix(s, "http://")
}
