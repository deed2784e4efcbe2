package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds the service configuration. The two API keys are optional:
// without GEMINI_API_KEY outfit suggestions come from canned templates, and
// without ASOS_API_KEY product search synthesizes fallback products.
type Config struct {
	// HTTP listen address, e.g. ":8080"
	Address string `env:"ADDRESS" envDefault:":8080"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	AsosAPIKey   string `env:"ASOS_API_KEY"`

	// Override for the ASOS API base URL (used in tests)
	AsosBaseURL string `env:"ASOS_BASE_URL"`

	// Path to the SQLite database holding user profiles
	DBPath string `env:"STYLIST_DB_PATH" envDefault:"stylist.db"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
