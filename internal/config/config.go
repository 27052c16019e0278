package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Policy   PolicyConfig
}

type DatabaseConfig struct {
	Host             string
	Port             int
	User             string
	Password         string
	Name             string
	SSLMode          string
	StatementTimeout time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PolicyConfig holds the behavior switches that the domain leaves to
// deployment policy rather than hard-coding.
type PolicyConfig struct {
	// VerifyEmployee enables the employee-directory existence check on clock-in.
	VerifyEmployee bool
	// EnforceLeaveDateOrder rejects leave applications with start_date > end_date.
	EnforceLeaveDateOrder bool
	// AllowStatusOverride permits approving/rejecting a leave request that
	// already reached a terminal status (admin override).
	AllowStatusOverride bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	statementTimeout, err := time.ParseDuration(getEnv("DB_STATEMENT_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_STATEMENT_TIMEOUT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:             getEnv("DB_HOST", "localhost"),
		Port:             dbPort,
		User:             getEnv("DB_USER", "postgres"),
		Password:         getEnv("DB_PASSWORD", ""),
		Name:             getEnv("DB_NAME", "dawami"),
		SSLMode:          getEnv("DB_SSL_MODE", "disable"),
		StatementTimeout: statementTimeout,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Policy = PolicyConfig{
		VerifyEmployee:        getEnvBool("POLICY_VERIFY_EMPLOYEE", true),
		EnforceLeaveDateOrder: getEnvBool("POLICY_ENFORCE_LEAVE_DATE_ORDER", false),
		AllowStatusOverride:   getEnvBool("POLICY_ALLOW_STATUS_OVERRIDE", true),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
