// Package config loads environment variables into structured,
// validated Go types.
//
// Variables are read with the ACCOUNTS_ prefix (a local .env file is
// loaded first when present) and mapped into nested structs via koanf.
// Required values are validated up front so the process fails fast on a
// broken environment instead of limping into requests.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix is stripped from environment variable names before they are
// mapped into config keys. ACCOUNTS_SERVER.PORT becomes server.port.
const envPrefix = "ACCOUNTS_"

// Config is the root configuration for the accounts service.
//
// Observability is a pointer because the whole block is optional;
// defaults are injected when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Email         EmailConfig          `koanf:"email" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary identifies the runtime environment (local, staging, production).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server runtime settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxConns        int    `koanf:"max_conns" validate:"required"`
	MinConns        int    `koanf:"min_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port").
// Redis backs the background job queue and is treated as optional at runtime.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// EmailConfig holds settings for the transactional email provider.
type EmailConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
	FromName     string `koanf:"from_name" validate:"required"`
	FromAddress  string `koanf:"from_address" validate:"required,email"`
}

// Load reads configuration from the environment, validates it, and applies
// observability defaults. Any failure at this stage is fatal.
func Load() (*Config, error) {
	// The main logger does not exist yet; use a minimal console logger
	// for bootstrap errors.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load environment variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// ServiceName and Environment are never user-configurable; telemetry
	// must be tagged consistently regardless of what the env says.
	cfg.Observability.ServiceName = "accounts"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return cfg, nil
}
