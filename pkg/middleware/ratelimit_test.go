package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type tickingClock struct {
	now time.Time
}

func (c *tickingClock) Now() time.Time { return c.now }

func (c *tickingClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	clock := &tickingClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(Limit{MaxRequests: 5, Window: time.Minute}, clock, zap.NewNop())

	t.Run("sixth request within window rejected", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			ok, _ := rl.Allow("10.0.0.1", "/api/reservations")
			require.True(t, ok)
		}

		ok, retryAfter := rl.Allow("10.0.0.1", "/api/reservations")
		assert.False(t, ok)
		assert.Greater(t, retryAfter, time.Duration(0))
	})

	t.Run("other clients unaffected", func(t *testing.T) {
		ok, _ := rl.Allow("10.0.0.2", "/api/reservations")
		assert.True(t, ok)
	})

	t.Run("other endpoints counted separately", func(t *testing.T) {
		ok, _ := rl.Allow("10.0.0.1", "/api/reservations/lookup")
		assert.True(t, ok)
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		clock.advance(61 * time.Second)

		ok, _ := rl.Allow("10.0.0.1", "/api/reservations")
		assert.True(t, ok)
	})
}

func TestRateLimiter_EndpointOverride(t *testing.T) {
	t.Parallel()

	clock := &tickingClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(Limit{MaxRequests: 100, Window: time.Minute}, clock, zap.NewNop())
	rl.SetEndpointLimit("/api/reservations", Limit{MaxRequests: 1, Window: time.Minute})

	ok, _ := rl.Allow("10.0.0.1", "/api/reservations")
	require.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1", "/api/reservations")
	assert.False(t, ok)

	// default limit still applies elsewhere
	ok, _ = rl.Allow("10.0.0.1", "/api/units")
	assert.True(t, ok)
}

func TestRateLimiter_Sweep(t *testing.T) {
	t.Parallel()

	clock := &tickingClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(Limit{MaxRequests: 5, Window: time.Minute}, clock, zap.NewNop())

	rl.Allow("10.0.0.1", "/api/reservations")
	rl.Allow("10.0.0.2", "/api/reservations")
	require.Len(t, rl.entries, 2)

	clock.advance(2 * time.Minute)
	rl.Allow("10.0.0.3", "/api/reservations")
	rl.Sweep()

	assert.Len(t, rl.entries, 1)
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Parallel()

	clock := &tickingClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(Limit{MaxRequests: 1, Window: time.Minute}, clock, zap.NewNop())

	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	handler.ServeHTTP(first, req)
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		expect string
	}{
		{
			name:   "remote addr fallback",
			setup:  func(r *http.Request) { r.RemoteAddr = "192.168.1.10:1234" },
			expect: "192.168.1.10",
		},
		{
			name:   "x-forwarded-for first hop wins",
			setup:  func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1") },
			expect: "203.0.113.7",
		},
		{
			name:   "x-real-ip used when no forwarded header",
			setup:  func(r *http.Request) { r.Header.Set("X-Real-IP", "203.0.113.9") },
			expect: "203.0.113.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			assert.Equal(t, tt.expect, ClientIP(req))
		})
	}
}
