package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DraftsMemory   = "memory"
	DraftsRedis    = "redis"
	DraftsPostgres = "postgres"
)

type App struct {
	Env      string `envconfig:"ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Network
	GRPCPort           string   `envconfig:"PORT" default:"50051"`
	WebPort            string   `envconfig:"WEB_PORT" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	// Auth
	JWTSecret     string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL      time.Duration `envconfig:"TOKEN_TTL" default:"15m"`
	AuthRateLimit float64       `envconfig:"AUTH_RATE_LIMIT_RPS" default:"5"`
	AuthRateBurst int           `envconfig:"AUTH_RATE_LIMIT_BURST" default:"10"`

	// Drafts
	DraftBackend  string        `envconfig:"DRAFT_BACKEND" default:"memory"`
	DraftTTL      time.Duration `envconfig:"DRAFT_TTL" default:"0s"`
	DatabaseURL   string        `envconfig:"DATABASE_URL"`
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`

	// Events
	AMQPURL        string `envconfig:"AMQP_URL"`
	EventsExchange string `envconfig:"EVENTS_EXCHANGE" default:"crm.events"`

	// Tracing
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads an optional .env file, then the process environment.
func Load() (App, error) {
	_ = godotenv.Load()
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c App) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	switch c.DraftBackend {
	case DraftsMemory:
	case DraftsRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis draft backend"))
		}
	case DraftsPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres draft backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DRAFT_BACKEND %q", c.DraftBackend))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.AuthRateLimit <= 0 || c.AuthRateBurst <= 0 {
		errs = append(errs, errors.New("auth rate limit and burst must be positive"))
	}
	if c.EventsExchange == "" && c.AMQPURL != "" {
		errs = append(errs, errors.New("EVENTS_EXCHANGE is required when AMQP_URL is set"))
	}
	return errors.Join(errs...)
}
