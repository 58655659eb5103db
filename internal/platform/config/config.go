// Package config loads and validates service configuration. Values are
// assembled in layers: built-in defaults, then configs/base.yaml, then the
// profile overlay (configs/{profile}.yaml), and finally APP_-prefixed
// environment variables, each layer overriding the one before it.
package config

import "time"

// Config is the fully merged service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Events    EventsConfig    `koanf:"events"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig configures the inbound HTTP listener.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig configures structured logging output.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig configures the outbound HTTP client used to reach the
// audit webhook, the only downstream this service calls.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig tunes the exponential backoff retry policy on outbound calls.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig tunes the circuit breaker guarding outbound calls.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig caps the outbound request rate. Setting
// RequestsPerSecond to 0 turns the limiter off.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// EventsConfig configures the event dispatcher. BufferSize bounds the
// in-memory queue between a committed status change and its delivery;
// MaxWorkers bounds sink fan-out per event.
type EventsConfig struct {
	BufferSize     int           `koanf:"buffer_size"`
	MaxWorkers     int           `koanf:"max_workers"`
	DeliverTimeout time.Duration `koanf:"deliver_timeout"`
	WebhookEnabled bool          `koanf:"webhook_enabled"`
	WebhookPath    string        `koanf:"webhook_path"`
}

// TelemetryConfig configures OpenTelemetry tracing and metrics export.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
