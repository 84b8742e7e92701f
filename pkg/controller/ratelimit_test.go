package controller_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"podium/pkg/controller"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	rl := controller.NewRateLimiter(0.001, 2, time.Minute)

	require.True(t, rl.Allow("1.1.1.1"))
	require.True(t, rl.Allow("1.1.1.1"))
	require.False(t, rl.Allow("1.1.1.1"))

	// other clients have their own bucket
	require.True(t, rl.Allow("2.2.2.2"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := controller.NewRateLimiter(0.001, 1, time.Minute)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := rl.Middleware(next)

	send := func() *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil)
		req.RemoteAddr = "3.3.3.3:4711"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec.Result()
	}

	require.Equal(t, http.StatusOK, send().StatusCode)
	res := send()
	require.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := controller.NewRateLimiter(0.001, 1, 0)

	require.True(t, rl.Allow("4.4.4.4"))
	require.False(t, rl.Allow("4.4.4.4"))

	time.Sleep(time.Millisecond)
	rl.Cleanup()

	// a fresh bucket is created after cleanup
	require.True(t, rl.Allow("4.4.4.4"))
}

func TestRateLimiter_MiddlewareIgnoresSpoofedForwardedFor(t *testing.T) {
	rl := controller.NewRateLimiter(0.001, 1, time.Minute)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 5)
	for i := range 5 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil)
		req.RemoteAddr = "5.5.5.5:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("10.1.0.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	require.Equal(t, []int{
		http.StatusOK,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)
}

func TestRateLimiter_TrustedProxyUsesAppendedEntry(t *testing.T) {
	rl := controller.NewRateLimiter(0.001, 1, time.Minute).TrustProxies(1)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(spoofed string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil)
		req.RemoteAddr = "192.168.0.1:443"
		// the proxy appends the real peer after whatever the client sent
		req.Header.Set("X-Forwarded-For", spoofed+", 6.6.6.6")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		return rec.Code
	}

	require.Equal(t, http.StatusOK, send("1.2.3.4"))
	require.Equal(t, http.StatusTooManyRequests, send("4.3.2.1"))
	require.Equal(t, http.StatusTooManyRequests, send("9.9.9.9, 8.8.8.8"))
}

func TestTrustedClientIP(t *testing.T) {
	tests := []struct {
		name    string
		xff     []string
		proxies int
		want    string
	}{
		{"no proxies ignores header", []string{"1.1.1.1"}, 0, "7.7.7.7"},
		{"one proxy takes rightmost", []string{"1.1.1.1, 2.2.2.2"}, 1, "2.2.2.2"},
		{"two proxies", []string{"1.1.1.1, 2.2.2.2, 3.3.3.3"}, 2, "2.2.2.2"},
		{"repeated headers", []string{"1.1.1.1", "2.2.2.2"}, 1, "2.2.2.2"},
		{"too few entries", []string{"2.2.2.2"}, 2, "7.7.7.7"},
		{"missing header", nil, 1, "7.7.7.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "7.7.7.7:80"
			for _, v := range tt.xff {
				req.Header.Add("X-Forwarded-For", v)
			}
			require.Equal(t, tt.want, controller.TrustedClientIP(req, tt.proxies))
		})
	}
}
