// Package config loads and validates application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Review   ReviewConfig   `mapstructure:"review"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// URL may be empty, in which case the server falls back to the in-memory
// store (state is lost on restart).
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"omitempty,gte=4,lte=31"`
}

// ReviewConfig tunes the spaced-repetition schedule. All values are in days.
type ReviewConfig struct {
	LongThresholdDays   int `mapstructure:"long_threshold_days"   validate:"required,gt=0"`
	MediumThresholdDays int `mapstructure:"medium_threshold_days" validate:"required,gt=0"`
	LongIntervalDays    int `mapstructure:"long_interval_days"    validate:"required,gt=0"`
	MediumIntervalDays  int `mapstructure:"medium_interval_days"  validate:"required,gt=0"`
	ShortIntervalDays   int `mapstructure:"short_interval_days"   validate:"required,gt=0"`
}
