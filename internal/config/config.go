// Package config loads runtime settings from PARKS_* environment variables.
//
// A local .env file is read first when present. Every key has a default, so
// an empty environment starts the API against mongodb on localhost.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PARKS_"

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr              string        `koanf:"http_addr" validate:"required"`
	StoreDriver       string        `koanf:"store_driver" validate:"oneof=mongo memory"`
	MongoURI          string        `koanf:"mongo_uri" validate:"required_if=StoreDriver mongo"`
	MongoDatabase     string        `koanf:"mongo_db" validate:"required"`
	ParkCollection    string        `koanf:"park_collection" validate:"required"`
	ReviewCollection  string        `koanf:"review_collection" validate:"required"`
	CounterCollection string        `koanf:"counter_collection" validate:"required"`
	ConnectTimeout    time.Duration `koanf:"connect_timeout" validate:"gt=0"`
	RequestTimeout    time.Duration `koanf:"request_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	// AllowedOrigins is a comma separated list; "*" allows any origin.
	AllowedOrigins string `koanf:"allowed_origins"`
	LogLevel       string `koanf:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogConsole     bool   `koanf:"log_console"`
	MetricsEnabled bool   `koanf:"metrics_enabled"`
	MetricsPath    string `koanf:"metrics_path" validate:"startswith=/"`
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Addr:              ":8080",
		StoreDriver:       StoreMongo,
		MongoURI:          "mongodb://localhost:27017",
		MongoDatabase:     "park-finder",
		ParkCollection:    "parks",
		ReviewCollection:  "reviews",
		CounterCollection: "counters",
		ConnectTimeout:    10 * time.Second,
		RequestTimeout:    5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		AllowedOrigins:    "*",
		LogLevel:          "info",
		MetricsEnabled:    true,
		MetricsPath:       "/metrics",
	}
}

// Load reads PARKS_* variables over the defaults and validates the result.
// PARKS_MONGO_URI maps to the mongo_uri key, and so on.
func Load() (Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Origins splits AllowedOrigins into its entries, falling back to "*".
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return []string{"*"}
	}
	return values
}
