// Package controller contains HTTP middlewares and helper handlers used by the
// website server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the site and app origins and answers OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - RateLimiter.Middleware: Per-client-IP token bucket used on the signup route.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
//   - GetClientIP: Resolves the originating client IP behind proxies, for logging.
//   - TrustedClientIP: Resolves the client IP from trusted proxy hops only.
package controller
