package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "WORKSHOP"

// DefaultSecretKey is the development signing key. Deployments must override it.
const DefaultSecretKey = "your-super-secret-key-change-this-for-production"

// legacyEnv maps config keys to the unprefixed variable names used by older
// deployments. A prefixed variable always wins over its legacy name.
var legacyEnv = map[string]string{
	"server.port":         "PORT",
	"server.frontend_url": "FRONTEND_URL",
	"database.url":        "DATABASE_URL",
	"auth.secret_key":     "SECRET_KEY",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.frontend_url", "http://localhost:5173")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.login_rate_per_second", 1.0)
	v.SetDefault("server.login_burst", 5)
	v.SetDefault("server.trust_proxy_headers", false)

	v.SetDefault("database.url", "sqlite:///./workshop.db")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.max_open_conns", 10)

	v.SetDefault("auth.secret_key", DefaultSecretKey)
	v.SetDefault("auth.token_lifetime_minutes", 30)
	v.SetDefault("auth.bcrypt_cost", 10)
}

// Load configuration from defaults, an optional config file, and the
// environment. Environment variables take precedence over the file.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("error binding env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
