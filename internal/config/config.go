// Package config loads the application configuration.
//
// Values come from three layers, later ones winning:
//   - built-in defaults (see defaults.go)
//   - a `.env` file, if present (loaded into the process env by godotenv)
//   - environment variables prefixed with PEOPLE_
//
// The result is unmarshalled into Config and validated so the app fails fast
// on bad or missing values.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before we read it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the PEOPLE_ prefix. The prefix is dropped, the
	key is lowercased and a double underscore marks nesting:

	  PEOPLE_SERVER__PORT          -> server.port
	  PEOPLE_SERVER__READ_TIMEOUT  -> server.read_timeout
	  PEOPLE_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

// EnvPrefix is the prefix every configuration env var must carry.
const EnvPrefix = "PEOPLE_"

// ServiceName identifies this service in logs and APM.
const ServiceName = "people-api"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,gt=0"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,gt=0"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,gt=0"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// MaxUploadBytes caps the request body accepted by file upload routes.
	MaxUploadBytes int64 `koanf:"max_upload_bytes" validate:"required,gt=0"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP. Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// RedisConfig contains Redis connection details.
//
// Redis is optional: an empty Address keeps the person directory in memory.
type RedisConfig struct {
	Address string `koanf:"address" validate:"omitempty,hostname_port"`

	// PersonsKey is the set holding the known person IDs.
	PersonsKey string `koanf:"persons_key" validate:"required_with=Address"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// LoadConfig loads configuration from defaults and environment variables,
// validates it and returns the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// envKeyValue maps PEOPLE_A__B_C=v to the koanf key "a.b_c".
//
// List-valued keys are split on commas.
func envKeyValue(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")

	if _, ok := listKeys[key]; ok {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}

		return key, out
	}

	return key, value
}

var listKeys = map[string]struct{}{
	"server.cors_allowed_origins":        {},
	"observability.health_checks.checks": {},
}
