package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists origins allowed by CORS; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// TrustedProxies is the number of reverse proxies in front of the server that append to X-Forwarded-For
		TrustedProxies int `env:"HTTP_TRUSTED_PROXIES" env-default:"0" yaml:"trustedProxies"`
	} `yaml:"http"`
	// Database contains all database connection related configurations
	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"podium"    yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"podium"    yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"      yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"   yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"podium"    yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"        yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"2"         yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"        yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"        yaml:"connMaxIdleTime"`
	} `yaml:"database"`
	// Redis configures the content cache. An empty Addr disables caching.
	Redis struct {
		Addr     string        `env:"REDIS_ADDR"     yaml:"addr"`
		Password string        `env:"REDIS_PASSWORD" yaml:"password"`
		DB       int           `env:"REDIS_DB"       env-default:"0"          yaml:"db"`
		TTL      time.Duration `env:"REDIS_TTL"      env-default:"5m"         yaml:"ttl"`
		Prefix   string        `env:"REDIS_PREFIX"   env-default:"podium:"    yaml:"prefix"`
	} `yaml:"redis"`
	// Site holds the public URLs used to build redirects.
	Site struct {
		// URL is the public marketing site, e.g. https://podium.example
		URL string `env:"SITE_URL" env-default:"http://localhost:8080" yaml:"url"`
		// AppURL is the application subdomain that hosts authenticated features
		AppURL string `env:"SITE_APP_URL" env-default:"http://localhost:3000" yaml:"appUrl"`
	} `yaml:"site"`
	// Identity configures the hosted identity provider admin API.
	Identity struct {
		// URL is the project URL of the hosted backend, e.g. https://xyz.supabase.co
		URL string `env:"IDENTITY_URL" yaml:"url"`
		// ServiceKey is the service-role key allowed to call admin endpoints
		ServiceKey string        `env:"IDENTITY_SERVICE_KEY" yaml:"serviceKey"`
		Timeout    time.Duration `env:"IDENTITY_TIMEOUT"     env-default:"10s" yaml:"timeout"`
	} `yaml:"identity"`
	// Payment configures the payment provider.
	Payment struct {
		URL       string        `env:"PAYMENT_URL"        env-default:"https://api.stripe.com" yaml:"url"`
		SecretKey string        `env:"PAYMENT_SECRET_KEY" yaml:"secretKey"`
		Timeout   time.Duration `env:"PAYMENT_TIMEOUT"    env-default:"10s"                    yaml:"timeout"`
	} `yaml:"payment"`
	// Token configures the short-lived auto-login tokens issued at signup.
	Token struct {
		// PrivateKey is the PEM encoded RSA private key used to sign tokens
		PrivateKey string        `env:"TOKEN_PRIVATE_KEY" yaml:"privateKey"`
		TTL        time.Duration `env:"TOKEN_TTL"         env-default:"5m"     yaml:"ttl"`
		Issuer     string        `env:"TOKEN_ISSUER"      env-default:"podium" yaml:"issuer"`
	} `yaml:"token"`
	// Signup tunes the signup route.
	Signup struct {
		MinPasswordLength int     `env:"SIGNUP_MIN_PASSWORD_LENGTH" env-default:"8"   yaml:"minPasswordLength"`
		RateLimitRPS      float64 `env:"SIGNUP_RATE_LIMIT_RPS"      env-default:"0.2" yaml:"rateLimitRps"`
		RateLimitBurst    int     `env:"SIGNUP_RATE_LIMIT_BURST"    env-default:"5"   yaml:"rateLimitBurst"`
		// CleanupMaxAttempts bounds retries of the orphaned identity user cleanup job
		CleanupMaxAttempts int `env:"SIGNUP_CLEANUP_MAX_ATTEMPTS" env-default:"10" yaml:"cleanupMaxAttempts"`
	} `yaml:"signup"`
	// Content controls list pagination.
	Content struct {
		ArticlesPageSize  int `env:"CONTENT_ARTICLES_PAGE_SIZE"  env-default:"9"  yaml:"articlesPageSize"`
		HelpPageSize      int `env:"CONTENT_HELP_PAGE_SIZE"      env-default:"12" yaml:"helpPageSize"`
		DirectoryPageSize int `env:"CONTENT_DIRECTORY_PAGE_SIZE" env-default:"12" yaml:"directoryPageSize"`
	} `yaml:"content"`
	// Worker configures the background job client.
	Worker struct {
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`
	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads an optional .env file, then the yaml config file at configPath,
// with environment variables taking precedence. A missing config file is
// not an error; defaults and the environment are used instead.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}

	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
