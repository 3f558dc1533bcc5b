package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"stay-booking/pkg/utils"

	"go.uber.org/zap"
)

// Limit configures a fixed window for one endpoint.
type Limit struct {
	MaxRequests int
	Window      time.Duration
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a process-local fixed-window counter keyed by
// (client IP, endpoint path). It does not coordinate across instances;
// bursts are possible at window boundaries.
type RateLimiter struct {
	mu           sync.Mutex
	entries      map[string]*windowEntry
	perEndpoint  map[string]Limit
	defaultLimit Limit
	clock        utils.Clock
	log          *zap.Logger
	stopSweep    chan struct{}
}

func NewRateLimiter(defaultLimit Limit, clock utils.Clock, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		entries:      make(map[string]*windowEntry),
		perEndpoint:  make(map[string]Limit),
		defaultLimit: defaultLimit,
		clock:        clock,
		log:          log.With(zap.String("middleware", "rate_limit")),
		stopSweep:    make(chan struct{}),
	}
}

// SetEndpointLimit overrides the default limit for one endpoint path.
func (rl *RateLimiter) SetEndpointLimit(path string, limit Limit) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.perEndpoint[path] = limit
}

// Allow records one request for key (ip, path). It returns whether the
// request is admitted and, when rejected, the remaining window duration.
func (rl *RateLimiter) Allow(ip, path string) (bool, time.Duration) {
	now := rl.clock.Now()
	key := ip + "|" + path

	rl.mu.Lock()
	defer rl.mu.Unlock()

	limit, ok := rl.perEndpoint[path]
	if !ok {
		limit = rl.defaultLimit
	}

	entry, ok := rl.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		// first request of a fresh window
		rl.entries[key] = &windowEntry{count: 1, resetAt: now.Add(limit.Window)}
		return true, 0
	}

	entry.count++
	if entry.count > limit.MaxRequests {
		return false, entry.resetAt.Sub(now)
	}
	return true, 0
}

// Sweep drops expired windows to bound memory.
func (rl *RateLimiter) Sweep() {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, entry := range rl.entries {
		if !now.Before(entry.resetAt) {
			delete(rl.entries, key)
		}
	}
}

// StartSweeper runs Sweep periodically until Stop is called.
func (rl *RateLimiter) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Sweep()
			case <-rl.stopSweep:
				return
			}
		}
	}()
}

func (rl *RateLimiter) Stop() {
	close(rl.stopSweep)
}

// Middleware rejects over-limit requests with 429 and a Retry-After hint.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)

			allowed, retryAfter := rl.Allow(ip, r.URL.Path)
			if !allowed {
				rl.log.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path),
					zap.Duration("retry_after", retryAfter),
				)
				seconds := int(retryAfter.Seconds())
				if seconds < 1 {
					seconds = 1
				}
				utils.ResponseTooManyRequests(w, "Too many requests, try again later", seconds)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the real client IP from the request.
func ClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
