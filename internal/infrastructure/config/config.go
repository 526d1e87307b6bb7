package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret may be empty at boot; protected endpoints then answer 500
	// until it is configured.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=168h"`

	// ProtectRecipes gates recipe create/update/delete behind authentication.
	// Off by default: the recipe board is public.
	ProtectRecipes bool `env:"PROTECT_RECIPES, default=false"`

	Mongo MongoConfig
}

type MongoConfig struct {
	// URI has no default on purpose: its absence must be a boot failure,
	// not a silent localhost fallback.
	URI string `env:"MONGO_URI"`
	// Database may stay empty; the connection layer falls back to the
	// service's own database name.
	Database string `env:"MONGO_DB"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
