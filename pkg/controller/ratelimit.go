package controller

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. The IP comes from
// TrustedClientIP, never from headers a client can set freely.
type RateLimiter struct {
	mu             sync.Mutex
	visitors       map[string]*visitor
	rps            rate.Limit
	burst          int
	ttl            time.Duration
	trustedProxies int
	now            func() time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second with the
// given burst per client IP. Visitors idle for longer than ttl are dropped by
// Cleanup.
func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

// TrustProxies sets how many reverse proxies in front of the server append
// to X-Forwarded-For. Zero keys buckets on the connection's remote address.
func (rl *RateLimiter) TrustProxies(n int) *RateLimiter {
	rl.trustedProxies = max(n, 0)

	return rl
}

// Allow reports whether a request from ip may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()

	return v.limiter.AllowN(v.lastSeen, 1)
}

// Cleanup removes visitors not seen within the configured ttl.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.ttl)
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

// Run calls Cleanup every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}

// Middleware rejects requests over the limit with 429 and a JSON error body.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(TrustedClientIP(r, rl.trustedProxies)) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "too many requests, please try again shortly"})

			return
		}

		next.ServeHTTP(w, r)
	})
}

// TrustedClientIP returns the client IP as seen by the outermost of
// trustedProxies reverse proxies. Each proxy appends the address it received
// the request from, so only the rightmost trustedProxies X-Forwarded-For
// entries are trustworthy; anything left of them is client-supplied. With no
// trusted proxies, or fewer entries than proxies, the remote address is used.
func TrustedClientIP(r *http.Request, trustedProxies int) string {
	if trustedProxies > 0 {
		var hops []string
		for _, h := range r.Header.Values("X-Forwarded-For") {
			hops = append(hops, strings.Split(h, ",")...)
		}
		if len(hops) >= trustedProxies {
			if ip := strings.TrimSpace(hops[len(hops)-trustedProxies]); ip != "" {
				return ip
			}
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
