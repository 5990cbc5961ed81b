package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func limitedHandler(limiter *RateLimiter) http.Handler {
	return RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"job_id":"job12345"}`))
	}))
}

func extractRequest(remoteAddr string) *http.Request {
	req := httptest.NewRequest("POST", "/extract", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestRateLimiter_ConsumesBudgetPerClient(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.True(t, rl.Allow("203.0.113.1"))
	assert.True(t, rl.Allow("203.0.113.1"))
	assert.False(t, rl.Allow("203.0.113.1"))

	// An exhausted client does not affect others
	assert.True(t, rl.Allow("203.0.113.2"))
}

func TestRateLimiter_WindowExpiryRestoresBudget(t *testing.T) {
	rl := NewRateLimiter(1, 50*time.Millisecond)

	assert.True(t, rl.Allow("203.0.113.1"))
	assert.False(t, rl.Allow("203.0.113.1"))

	time.Sleep(75 * time.Millisecond)

	assert.True(t, rl.Allow("203.0.113.1"))
}

func TestRateLimitMiddleware_PassesRequestsWithinBudget(t *testing.T) {
	handler := limitedHandler(NewRateLimiter(3, time.Minute))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, extractRequest("203.0.113.1:52100"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitMiddleware_RejectsOverBudget(t *testing.T) {
	handler := limitedHandler(NewRateLimiter(1, time.Minute))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, extractRequest("203.0.113.1:52100"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, extractRequest("203.0.113.1:52100"))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "request budget")
}

func TestRateLimitMiddleware_PortChangeIsSameClient(t *testing.T) {
	// Reconnecting from a new source port must not grant a fresh budget
	handler := limitedHandler(NewRateLimiter(1, time.Minute))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, extractRequest("203.0.113.1:52100"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, extractRequest("203.0.113.1:59999"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name     string
		setupReq func(*http.Request)
		want     string
	}{
		{
			name: "first X-Forwarded-For hop is the client",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.2")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			want: "203.0.113.1",
		},
		{
			name: "X-Real-IP when no X-Forwarded-For",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "203.0.113.7")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			want: "203.0.113.7",
		},
		{
			name: "remote address loses its port",
			setupReq: func(r *http.Request) {
				r.RemoteAddr = "192.0.2.9:40312"
			},
			want: "192.0.2.9",
		},
		{
			name: "X-Forwarded-For wins over X-Real-IP",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1")
				r.Header.Set("X-Real-IP", "198.51.100.1")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			want: "203.0.113.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/extract", nil)
			tt.setupReq(req)

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
