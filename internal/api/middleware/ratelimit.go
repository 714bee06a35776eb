package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"golang.org/x/time/rate"
)

// visitor tracks one client's token bucket.
type visitor struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

func (v *visitor) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *visitor) idleSince(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return now.Sub(v.lastSeen)
}

// IPRateLimiter allows at most max requests per window for each client IP.
// Quotas refill continuously, so a client that exhausts its quota regains one
// request every window/max.
type IPRateLimiter struct {
	visitors sync.Map // map[string]*visitor
	limit    rate.Limit
	burst    int
	window   time.Duration
	message  string
	now      func() time.Time
}

// NewIPRateLimiter creates a limiter that answers with message once a client
// exceeds max requests in window.
func NewIPRateLimiter(max int, window time.Duration, message string) *IPRateLimiter {
	if max < 1 {
		max = 1
	}
	return &IPRateLimiter{
		limit:   rate.Every(window / time.Duration(max)),
		burst:   max,
		window:  window,
		message: message,
		now:     time.Now,
	}
}

func (l *IPRateLimiter) get(ip string) *visitor {
	if v, ok := l.visitors.Load(ip); ok {
		return v.(*visitor)
	}
	v, _ := l.visitors.LoadOrStore(ip, &visitor{
		limiter:  rate.NewLimiter(l.limit, l.burst),
		lastSeen: l.now(),
	})
	return v.(*visitor)
}

// Allow reports whether the client may make another request now, along with
// the quota left after this request.
func (l *IPRateLimiter) Allow(ip string) (bool, int) {
	now := l.now()
	v := l.get(ip)
	v.touch(now)

	allowed := v.limiter.AllowN(now, 1)
	remaining := int(v.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return allowed, remaining
}

// Middleware rejects requests over quota with 429 Too Many Requests.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	retryAfter := int(l.window.Seconds())

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining := l.Allow(clientIP(r))

		h := w.Header()
		h.Set("RateLimit-Limit", strconv.Itoa(l.burst))
		h.Set("RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("X-Rate-Limit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			h.Set("Retry-After", strconv.Itoa(retryAfter))
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests, l.message, nil,
				shared.WithRetryAfter(retryAfter))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Cleanup drops clients idle for longer than maxIdle and returns how many
// were removed.
func (l *IPRateLimiter) Cleanup(maxIdle time.Duration) int {
	now := l.now()
	removed := 0
	l.visitors.Range(func(key, value any) bool {
		if value.(*visitor).idleSince(now) > maxIdle {
			l.visitors.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// RunCleanup calls Cleanup every interval until ctx is cancelled. Clients are
// forgotten once idle for a full window, at which point their quota is full
// again anyway.
func (l *IPRateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Cleanup(l.window); n > 0 {
				slog.Debug("rate limiter cleanup", "removed", n)
			}
		}
	}
}

// clientIP returns the host part of RemoteAddr. chi's RealIP middleware
// rewrites RemoteAddr from proxy headers earlier in the chain.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
