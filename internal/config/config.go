package config

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// FrontendURL is the single origin allowed to call the API from a browser.
	FrontendURL            string  `mapstructure:"frontend_url"             validate:"required,url"`
	ShutdownTimeoutSeconds int     `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	LoginRatePerSecond     float64 `mapstructure:"login_rate_per_second"    validate:"gt=0"`
	LoginBurst             int     `mapstructure:"login_burst"              validate:"gt=0"`
	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool `mapstructure:"trust_proxy_headers"`
}

// DatabaseConfig contains persistence settings. URL is either a sqlite://
// URL or a Postgres connection string.
type DatabaseConfig struct {
	URL          string `mapstructure:"url"            validate:"required"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gt=0"`
}

// AuthConfig contains token and password hashing settings.
type AuthConfig struct {
	SecretKey            string `mapstructure:"secret_key"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0,lte=1440"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`
}
