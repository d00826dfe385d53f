package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Logging LoggingConfig
	LLM     LLMConfig
	Stripe  StripeConfig
	Quota   QuotaConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	FrontendURL     string
	Environment     string
}

// AuthConfig contains authentication configuration
type AuthConfig struct {
	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	BCryptCost         int
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// LLMConfig contains LLM provider configuration defaults. Per-provider
// enablement and keys live in the admin-managed provider settings; these
// values seed them on startup.
type LLMConfig struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string
	DefaultModel  string
}

// StripeConfig contains payment provider configuration
type StripeConfig struct {
	APIKey     string
	SuccessURL string
	CancelURL  string
}

// QuotaConfig controls message-quota accounting. ResetPolicy is one of
// "never", "daily", "monthly". "never" matches the original behavior of a
// counter that only grows for the lifetime of the process.
type QuotaConfig struct {
	ResetPolicy string
}

// Quota reset policies
const (
	QuotaResetNever   = "never"
	QuotaResetDaily   = "daily"
	QuotaResetMonthly = "monthly"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors as it's optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
			Environment:     getEnv("ENVIRONMENT", "development"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", ""),
			AccessTokenExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshTokenExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
			BCryptCost:         getEnvAsInt("BCRYPT_COST", 12),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		LLM: LLMConfig{
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
			DefaultModel:  getEnv("LLM_DEFAULT_MODEL", "simulated-echo"),
		},
		Stripe: StripeConfig{
			APIKey:     getEnv("STRIPE_API_KEY", ""),
			SuccessURL: getEnv("STRIPE_SUCCESS_URL", "http://localhost:5173/chat?checkout=success"),
			CancelURL:  getEnv("STRIPE_CANCEL_URL", "http://localhost:5173/plans?checkout=cancelled"),
		},
		Quota: QuotaConfig{
			ResetPolicy: getEnv("QUOTA_RESET_POLICY", QuotaResetNever),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Quota.ResetPolicy {
	case QuotaResetNever, QuotaResetDaily, QuotaResetMonthly:
	default:
		return fmt.Errorf("unsupported quota reset policy: %s", c.Quota.ResetPolicy)
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
