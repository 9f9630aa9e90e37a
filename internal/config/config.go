package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is loaded once at startup and
// never mutated afterwards; the token secret in particular is read-only for
// the lifetime of the process.
type Config struct {
	Addr         string        `env:"ADDR,default=:8080"`
	DBPath       string        `env:"DB_PATH,default=./bbdap.db"`
	JWTSecret    string        `env:"JWT_SECRET,default=bbdap_dev_secret_key"` // fallback for local use only, never deploy with it
	TokenTTL     time.Duration `env:"TOKEN_TTL,default=2h"`
	SeedDemo     bool          `env:"SEED_DEMO,default=false"`
	OTLPEndpoint string        `env:"OTLP_ENDPOINT,default=otel-collector:4317"`
}

// Load reads configuration from the environment, after loading a .env file
// if one is present in the working directory.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config from environment: %w", err)
	}
	return &cfg, nil
}
