// ABOUTME: Request logging middleware tagging every request with an ID
// ABOUTME: Emits paired start/finish log lines with status and timing

package middleware

import (
	"context"
	"net/http"
	"time"

	"docextract-app-api/core/interfaces"
	"github.com/google/uuid"
)

// statusRecorder captures the status code written by downstream handlers
type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.wrote {
		sr.status = code
		sr.ResponseWriter.WriteHeader(code)
		sr.wrote = true
	}
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.wrote {
		sr.WriteHeader(http.StatusOK)
	}
	return sr.ResponseWriter.Write(b)
}

// RequestIDKey is the context key under which the request ID is stored
type RequestIDKey struct{}

// slowThreshold flags requests that outlive a typical extraction round
// trip; batch uploads routinely take seconds, so the bar sits well above
// ordinary latency.
const slowThreshold = 30 * time.Second

// RequestLoggingMiddleware assigns each request a UUID, echoes it in the
// X-Request-ID response header, and logs start, completion, slowness,
// and server errors.
func RequestLoggingMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.New().String()
			w.Header().Set("X-Request-ID", requestID)
			r = r.WithContext(context.WithValue(r.Context(), RequestIDKey{}, requestID))

			logger.Info("Request started", map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"remote_ip":  clientIP(r),
				"user_agent": r.UserAgent(),
			})

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			duration := time.Since(start)

			logger.Info("Request completed", map[string]interface{}{
				"request_id":  requestID,
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration":    duration.String(),
				"duration_ms": duration.Milliseconds(),
			})

			if duration > slowThreshold {
				logger.Warn("Slow request", map[string]interface{}{
					"request_id": requestID,
					"path":       r.URL.Path,
					"duration":   duration.String(),
				})
			}

			if rec.status >= 500 {
				logger.Error("Request failed with server error", map[string]interface{}{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     rec.status,
				})
			}
		})
	}
}

// RequestIDFromContext returns the request ID assigned by the logging
// middleware, or an empty string outside of a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey{}).(string)
	return id
}
