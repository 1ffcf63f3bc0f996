package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// getRateLimitForEndpoint determines which rate limit to apply based on config
func (mw *Middleware) getRateLimitForEndpoint(method string) (int, time.Duration) {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return mw.cfg.RateLimit.GeneralLimit, mw.cfg.RateLimit.GeneralWindow
	default:
		return mw.cfg.RateLimit.MutationLimit, mw.cfg.RateLimit.MutationWindow
	}
}

// ClientIP returns the client address; chi's RealIP has already applied proxy headers
func ClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// NormalizeEndpoint groups page view routes so every page id shares one counter
func NormalizeEndpoint(method, path string) string {
	path = strings.TrimSuffix(path, "/")

	if rest, ok := strings.CutPrefix(path, "/pages/product/"); ok {
		if _, action, found := strings.Cut(rest, "/"); found {
			path = "/pages/product/:id/" + action
		} else {
			path = "/pages/product/:id"
		}
	}

	if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
		return path
	}
	return method + " " + path
}

// RateLimitMiddleware implements fixed window rate limiting backed by Redis
func (mw *Middleware) RateLimitMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip if rate limiting is disabled or no Redis is available
			if !mw.cfg.RateLimit.Enabled || mw.cacheService == nil {
				next.ServeHTTP(w, r)
				return
			}

			// Skip rate limiting for health checks and metrics
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/metrics" || r.URL.Path == "/" {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := ClientIP(r)
			limit, window := mw.getRateLimitForEndpoint(r.Method)
			endpoint := NormalizeEndpoint(r.Method, r.URL.Path)

			count, err := mw.cacheService.IncrementRateLimit(r.Context(), clientIP, endpoint, window)
			if err != nil {
				// Cache error - log and allow request (fail open)
				mw.logger.Warn("Rate limit cache error, allowing request",
					gecho.Field("error", err),
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
				)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				mw.logger.Warn("Rate limit exceeded",
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
				)

				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				w.Header().Set("Content-Type", "application/json")

				http.Error(w, fmt.Sprintf(`{"message":"Rate limit exceeded. Please try again later.","data":{"limit":%d,"window":"%s","retry_after":%d}}`,
					limit, window.String(), int(window.Seconds())), http.StatusTooManyRequests)
				return
			}

			remaining := max(0, limit-count)
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))

			// Log if getting close to limit (80% threshold)
			if count > int(float64(limit)*0.8) {
				mw.logger.Debug("Rate limit warning",
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
					gecho.Field("remaining", remaining),
				)
			}

			next.ServeHTTP(w, r)
		})
	}
}
