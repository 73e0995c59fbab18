// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
)

// Config is built once at startup and handed to every component; nothing
// below cmd reads the environment directly.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TripsFile is the JSON file holding saved trips.
	TripsFile string `envconfig:"TRIPS_FILE" default:"saved_trips.json"`

	// ItineraryProvider selects the text-generation backend: gemini or openai.
	ItineraryProvider string        `envconfig:"ITINERARY_PROVIDER" default:"gemini"`
	GoogleAPIKey      string        `envconfig:"GOOGLE_API_KEY"`
	GeminiModel       string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	OpenAIAPIKey      string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel       string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIBaseURL     string        `envconfig:"OPENAI_BASE_URL"`
	GenerationTimeout time.Duration `envconfig:"GENERATION_TIMEOUT" default:"10s"`

	// PlacesAPIKey falls back to GoogleAPIKey when unset.
	PlacesAPIKey  string        `envconfig:"GOOGLE_MAPS_API_KEY"`
	PlacesBaseURL string        `envconfig:"PLACES_BASE_URL" default:"https://maps.googleapis.com"`
	PlacesTimeout time.Duration `envconfig:"PLACES_TIMEOUT" default:"10s"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// Load reads an optional .env file and then the process environment.
// Missing credentials are not an error here; see MissingCredentials.
func Load() (Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("error processing environment configuration: %w", err)
	}

	if cfg.PlacesAPIKey == "" {
		cfg.PlacesAPIKey = cfg.GoogleAPIKey
	}
	cfg.ItineraryProvider = strings.ToLower(strings.TrimSpace(cfg.ItineraryProvider))
	cfg.PlacesBaseURL = strings.TrimRight(cfg.PlacesBaseURL, "/")
	cfg.CORSOrigins = lo.Compact(lo.Map(cfg.CORSOrigins, func(o string, _ int) string {
		return strings.TrimSpace(o)
	}))

	switch cfg.ItineraryProvider {
	case "gemini", "openai":
	default:
		return Config{}, fmt.Errorf("unsupported ITINERARY_PROVIDER %q, use 'gemini' or 'openai'", cfg.ItineraryProvider)
	}

	return cfg, nil
}

// GenerationAPIKey is the credential of the selected itinerary provider.
func (c Config) GenerationAPIKey() string {
	if c.ItineraryProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GoogleAPIKey
}

// GenerationKeyName is the environment variable holding GenerationAPIKey.
func (c Config) GenerationKeyName() string {
	if c.ItineraryProvider == "openai" {
		return "OPENAI_API_KEY"
	}
	return "GOOGLE_API_KEY"
}

// MissingCredentials names every credential the configured backends need
// but do not have.
func (c Config) MissingCredentials() []string {
	var missing []string
	if c.GenerationAPIKey() == "" {
		missing = append(missing, c.GenerationKeyName())
	}
	if c.PlacesAPIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	return missing
}
