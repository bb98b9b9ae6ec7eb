package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage" validate:"required"`
	Upload   UploadConfig   `mapstructure:"upload" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains PostgreSQL settings.
type DatabaseConfig struct {
	URL      string `mapstructure:"url" validate:"required,url"`
	MaxConns int32  `mapstructure:"max_conns" validate:"gte=0"`
}

// AuthConfig contains token and password hashing settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=43200"`
	BCryptCost           int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// TokenLifetime returns the access token lifetime as a duration.
func (a AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(a.TokenLifetimeMinutes) * time.Minute
}

// StorageConfig selects and configures the object storage backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=local gcs"`

	// Local backend.
	LocalDir      string `mapstructure:"local_dir" validate:"required_if=Backend local"`
	PublicBaseURL string `mapstructure:"public_base_url" validate:"required_if=Backend local"`

	// GCS backend.
	Bucket          string `mapstructure:"bucket" validate:"required_if=Backend gcs"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// UploadConfig limits accepted uploads.
type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes" validate:"required,gt=0"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
