// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP server listens on (e.g. :8000).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DBHost is the MySQL server host. Required.
	DBHost string `mapstructure:"DB_HOST"`
	// DBPort is the MySQL server port. Required; must be an integer.
	DBPort int `mapstructure:"DB_PORT"`
	// DBUser is the MySQL user. Required.
	DBUser string `mapstructure:"DB_USER"`
	// DBPassword is the MySQL password. Required.
	DBPassword string `mapstructure:"DB_PASSWORD"`
	// DBName is the database name. Required.
	DBName string `mapstructure:"DB_NAME"`
	// BcryptCost is the bcrypt cost factor (4–31); default 12.
	BcryptCost int `mapstructure:"BCRYPT_COST"`
	// AdminAPIKey gates product creation via the X-Admin-Key header.
	// Empty means product creation is always denied.
	AdminAPIKey string `mapstructure:"ADMIN_API_KEY"`
	// LogLevel is the slog level: debug, info, warn, error. Default info.
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// LogFormat is the slog handler format: json or text. Default json.
	LogFormat string `mapstructure:"LOG_FORMAT"`
	// OTLPEndpoint is the OTLP gRPC collector endpoint (e.g. localhost:4317).
	// Empty disables telemetry export.
	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	// OTelInsecure forces plaintext OTLP export even for https endpoints.
	OTelInsecure bool `mapstructure:"OTEL_INSECURE"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. The five DB_* fields are
// required and have no defaults; each missing field is its own error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8000")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", 0)
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("ADMIN_API_KEY", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_INSECURE", false)
	v.SetDefault("APP_ENV", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}
	if cfg.DBHost == "" {
		return nil, errors.New("config: DB_HOST environment variable must be set")
	}
	if cfg.DBPort == 0 {
		// Viper coerces non-numeric values to 0 as well, so this covers both
		// the unset and the unparsable case.
		return nil, errors.New("config: DB_PORT environment variable must be set to a valid integer")
	}
	if cfg.DBPort < 0 || cfg.DBPort > 65535 {
		return nil, errors.New("config: DB_PORT must be a valid TCP port")
	}
	if cfg.DBUser == "" {
		return nil, errors.New("config: DB_USER environment variable must be set")
	}
	if cfg.DBPassword == "" {
		return nil, errors.New("config: DB_PASSWORD environment variable must be set")
	}
	if cfg.DBName == "" {
		return nil, errors.New("config: DB_NAME environment variable must be set")
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	return &cfg, nil
}

// DSN builds the go-sql-driver DSN for the configured database.
// parseTime is enabled so DATETIME columns scan into time.Time; clientFoundRows
// makes UPDATE report matched rows rather than changed rows, which the
// repositories rely on to distinguish missing ids from no-op updates.
func (c *Config) DSN() string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.DBHost, c.DBPort)
	mc.User = c.DBUser
	mc.Passwd = c.DBPassword
	mc.DBName = c.DBName
	mc.ParseTime = true
	mc.ClientFoundRows = true
	return mc.FormatDSN()
}

// AdminEnabled reports whether an admin API key is configured.
// With no key, admin-gated operations are always denied.
func (c *Config) AdminEnabled() bool {
	return c.AdminAPIKey != ""
}
