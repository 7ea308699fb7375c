package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the portal.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `env:"PORTAL_ADDR" envDefault:":8080" validate:"required"`
	// APIBaseURL is the origin of the backend API, e.g. http://localhost:5000.
	APIBaseURL string `env:"PORTAL_API_BASE_URL" validate:"required,url"`
	// APITimeout bounds every backend call.
	APITimeout time.Duration `env:"PORTAL_API_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	// SessionSecret signs the flash-message cookie.
	SessionSecret string `env:"PORTAL_SESSION_SECRET" validate:"required,min=16"`
	// StaticDir is served under /static.
	StaticDir string `env:"PORTAL_STATIC_DIR" envDefault:"web/static" validate:"required"`
	// FavouritesToggle renders the favourites-only toggle on the listing page.
	FavouritesToggle bool `env:"PORTAL_FAVOURITES_TOGGLE" envDefault:"true"`
	// RateLimit is the per-IP requests per minute allowed on form posts.
	RateLimit int `env:"PORTAL_RATE_LIMIT" envDefault:"10" validate:"gte=1"`
	// LogFormat selects the slog handler: text, json or pretty.
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json pretty"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// New loads a .env file when present, then parses and validates the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet; the standard logger is fine for this one line.
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
