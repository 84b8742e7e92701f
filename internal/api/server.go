// Package api configures and exposes the HTTP server: the public pages, the
// JSON API, metrics, docs and related middleware.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"podium/internal/api/handler/pages"
	"podium/internal/api/handler/v1handler"
	"podium/internal/config"
	"podium/pkg/controller"
	"podium/pkg/logger"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification of the JSON API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// healthTimeout bounds the database ping done by /healthz.
const healthTimeout = 2 * time.Second

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Pages configures the HTML site.
	Pages pages.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists CORS origins; empty allows any.
	AllowedOrigins []string
	// SignupRateLimitRPS and SignupRateLimitBurst limit signup POSTs per
	// client IP. A non-positive rate disables the limit.
	SignupRateLimitRPS   float64
	SignupRateLimitBurst int
	// TrustedProxies is how many reverse proxies append to X-Forwarded-For.
	// Zero keys the signup limit on the connection's remote address.
	TrustedProxies int
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Pages: pages.Options{
			SiteURL:           cfg.Site.URL,
			AppURL:            cfg.Site.AppURL,
			MinPasswordLength: cfg.Signup.MinPasswordLength,
		},

		Addr:                 cfg.HTTP.Addr,
		ReadTimeout:          cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout:    cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:         cfg.HTTP.WriteTimeout,
		IdleTimeout:          cfg.HTTP.IdleTimeout,
		RequestTimeout:       cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:       cfg.HTTP.MaxHeaderBytes,
		MetricsPath:          cfg.HTTP.MetricsPath,
		AllowedOrigins:       cfg.HTTP.AllowedOrigins,
		SignupRateLimitRPS:   cfg.Signup.RateLimitRPS,
		SignupRateLimitBurst: cfg.Signup.RateLimitBurst,
		TrustedProxies:       cfg.HTTP.TrustedProxies,
	}
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	v1handler.Deps

	Database Pinger
}

// NewMeterProvider creates the OpenTelemetry meter provider exporting through
// the default Prometheus registry and installs it as the global provider.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewHandler builds the router. The signup rate limiter's cleanup loop runs
// until ctx is done.
func NewHandler(ctx context.Context, deps Deps, opts Options) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(controller.WithLogger)
	r.Use(middleware.Recoverer)
	r.Use(controller.WithCORS(opts.AllowedOrigins))

	// prometheus metrics server
	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.Handler())
	}

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// swagger playground
	r.Handle("/docs/*", v5emb.New(
		"Podium API",
		"/specs/v1.yaml",
		"/docs/",
	))

	// pprof
	r.Handle("/debug/pprof/*", controller.PprofMux())

	r.Get("/healthz", healthz(deps.Database))

	// json api
	var signupLimit func(http.Handler) http.Handler
	if opts.SignupRateLimitRPS > 0 {
		limiter := controller.NewRateLimiter(opts.SignupRateLimitRPS, max(opts.SignupRateLimitBurst, 1), 10*time.Minute).
			TrustProxies(opts.TrustedProxies)
		go limiter.Run(ctx, time.Minute)
		signupLimit = limiter.Middleware
	}
	v1handler.New(deps.Deps).Routes(r, signupLimit)

	// html pages
	ph, err := pages.New(deps.Content, opts.Pages)
	if err != nil {
		return nil, fmt.Errorf("could not create pages handler: %w", err)
	}
	ph.Routes(r)

	return r, nil
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))

				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - JSON API routes and the HTML pages
// - pprof endpoints for profiling
// It wraps the router with logging, panic recovery and CORS middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(ctx, deps, opts)
	if err != nil {
		return nil, err
	}
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
