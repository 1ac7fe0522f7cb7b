// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// TrustedProxies is a list of CIDR ranges or IPs of trusted reverse proxies.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES" yaml:"trusted_proxies"`
}

// EmailConfig holds configuration for forwarding feedback via Resend.
// When Enabled is false, accepted submissions are only logged.
type EmailConfig struct {
	Enabled          bool   `mapstructure:"ENABLED" yaml:"enabled"`
	FromAddress      string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName         string `mapstructure:"FROM_NAME" yaml:"from_name"`
	RecipientAddress string `mapstructure:"RECIPIENT_ADDRESS" yaml:"recipient_address"`
	ResendAPIKey     string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
}

// RateLimitConfig holds the fixed-window limiter parameters for the feedback
// endpoint: MaxSubmissions per identifier per WindowSeconds.
type RateLimitConfig struct {
	MaxSubmissions int `mapstructure:"MAX_SUBMISSIONS" yaml:"max_submissions"`
	WindowSeconds  int `mapstructure:"WINDOW_SECONDS" yaml:"window_seconds"`
}

// Window returns the limiter window as a duration.
func (c *RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// RedisConfig holds connection details for the optional shared rate-limit
// store. When Enabled is false, each process keeps an independent in-memory
// table and the effective limit is limit x instance count.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"ENABLED" yaml:"enabled"`
	Address  string `mapstructure:"ADDRESS" yaml:"address"`
	Password string `mapstructure:"PASSWORD" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"db"`
	UseTLS   bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server    ServerConfig    `mapstructure:"SERVER" yaml:"server"`
	Email     EmailConfig     `mapstructure:"EMAIL" yaml:"email"`
	RateLimit RateLimitConfig `mapstructure:"RATE_LIMIT" yaml:"rate_limit"`
	Redis     RedisConfig     `mapstructure:"REDIS" yaml:"redis"`
}

// IsDevelopment returns true if the application is running in development.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, unmarshals into the Config struct, and validates it
// once at startup so misconfiguration surfaces before the first request.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{}) // Empty = trust no one
	v.SetDefault("SERVER.VERSION", "1.0.0")
	v.SetDefault("EMAIL.ENABLED", false)
	v.SetDefault("EMAIL.FROM_ADDRESS", "onboarding@resend.dev")
	v.SetDefault("EMAIL.FROM_NAME", "Portfolio Contact Form")
	v.SetDefault("RATE_LIMIT.MAX_SUBMISSIONS", 5)
	v.SetDefault("RATE_LIMIT.WINDOW_SECONDS", 3600)
	v.SetDefault("REDIS.ENABLED", false)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
		{"SERVER.VERSION", "VERSION"},
		{"EMAIL.ENABLED", "EMAIL_ENABLED"},
		{"EMAIL.FROM_ADDRESS", "FEEDBACK_FROM_EMAIL"},
		{"EMAIL.FROM_NAME", "FEEDBACK_FROM_NAME"},
		{"EMAIL.RECIPIENT_ADDRESS", "FEEDBACK_RECIPIENT_EMAIL"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"RATE_LIMIT.MAX_SUBMISSIONS", "RATE_LIMIT_MAX_SUBMISSIONS"},
		{"RATE_LIMIT.WINDOW_SECONDS", "RATE_LIMIT_WINDOW_SECONDS"},
		{"REDIS.ENABLED", "REDIS_ENABLED"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"allowed_origins", cfg.Server.AllowedOrigins,
		"email_enabled", cfg.Email.Enabled,
		"email_recipient", logger.MaskEmail(cfg.Email.RecipientAddress),
		"resend_api_key", logger.MaskSensitiveString(cfg.Email.ResendAPIKey, 4, 2),
		"rate_limit_max", cfg.RateLimit.MaxSubmissions,
		"rate_limit_window_seconds", cfg.RateLimit.WindowSeconds,
		"redis_enabled", cfg.Redis.Enabled,
	)

	return &cfg, nil
}

// validateConfig enforces invariants that would otherwise surface as request
// failures deep inside the feedback pipeline.
func validateConfig(cfg *Config) error {
	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("unknown environment: %q", cfg.Server.Environment)
	}

	if cfg.RateLimit.MaxSubmissions < 1 {
		return fmt.Errorf("rate limit max submissions must be positive, got %d", cfg.RateLimit.MaxSubmissions)
	}
	if cfg.RateLimit.WindowSeconds < 1 {
		return fmt.Errorf("rate limit window must be positive, got %ds", cfg.RateLimit.WindowSeconds)
	}

	if cfg.Email.Enabled {
		if cfg.Email.ResendAPIKey == "" {
			return fmt.Errorf("email is enabled but RESEND_API_KEY is not set")
		}
		if cfg.Email.RecipientAddress == "" {
			return fmt.Errorf("email is enabled but FEEDBACK_RECIPIENT_EMAIL is not set")
		}
	}

	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		return fmt.Errorf("redis is enabled but REDIS_ADDRESS is not set")
	}

	return nil
}
