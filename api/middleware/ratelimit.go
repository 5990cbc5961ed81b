// ABOUTME: Per-client rate limiting for the extraction endpoints
// ABOUTME: Fixed-window counters keyed by client IP with a background sweep

package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter enforces a fixed-window request budget per client.
// Extraction calls are expensive, so the accounting is deliberately
// coarse: one counter per client IP, reset every window.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*usage
	limit   int
	window  time.Duration
}

// usage tracks one client's consumption within the current window
type usage struct {
	count   int
	started time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per client
// within each window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*usage),
		limit:   limit,
		window:  window,
	}

	go rl.sweep()

	return rl
}

// sweep drops clients whose window has lapsed so idle IPs do not
// accumulate in the map
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, u := range rl.clients {
			if now.Sub(u.started) > rl.window {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow reports whether the client identified by key has budget left in
// the current window, consuming one unit when it does
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	u, ok := rl.clients[key]
	if !ok || now.Sub(u.started) > rl.window {
		rl.clients[key] = &usage{count: 1, started: now}
		return true
	}

	if u.count >= rl.limit {
		return false
	}
	u.count++
	return true
}

// clientIP resolves the caller's address. Proxy headers win when present:
// the first X-Forwarded-For hop, then X-Real-IP, then the connection's
// remote address with its port stripped.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware rejects requests over the per-client budget with a
// problem+json 429 carrying a Retry-After hint
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.limit))
			w.Header().Set("X-RateLimit-Window", limiter.window.String())

			if !limiter.Allow(clientIP(r)) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(limiter.window.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprintf(w, `{"title":"Too Many Requests","status":429,"detail":"request budget of %d per %s exhausted"}`,
					limiter.limit, limiter.window)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
