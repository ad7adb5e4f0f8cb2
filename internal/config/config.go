package config

import (
	"fmt"
	"time"

	apperrors "maintenance-scheduler-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Scheduler defaults; callers can override buffer/break/grouping per request
	SchedulerBufferMinutes       int  `mapstructure:"SCHEDULER_BUFFER_MINUTES"`
	SchedulerGroupByMachine      bool `mapstructure:"SCHEDULER_GROUP_BY_MACHINE"`
	SchedulerPrioritizeMandatory bool `mapstructure:"SCHEDULER_PRIORITIZE_MANDATORY"`
	StorageTimeoutMillis         int  `mapstructure:"STORAGE_TIMEOUT_MS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "maintenance_scheduler")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Scheduler defaults
	viper.SetDefault("SCHEDULER_BUFFER_MINUTES", 0)
	viper.SetDefault("SCHEDULER_GROUP_BY_MACHINE", false)
	viper.SetDefault("SCHEDULER_PRIORITIZE_MANDATORY", true)
	viper.SetDefault("STORAGE_TIMEOUT_MS", 3000)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return &apperrors.ConfigurationError{Message: "database name is required"}
	}
	if config.SchedulerBufferMinutes < 0 {
		return &apperrors.ConfigurationError{Message: "SCHEDULER_BUFFER_MINUTES must not be negative"}
	}
	if config.StorageTimeoutMillis <= 0 {
		return &apperrors.ConfigurationError{Message: "STORAGE_TIMEOUT_MS must be positive"}
	}
	return nil
}

// StorageTimeout returns the bound applied to execution-store calls
func (c *Config) StorageTimeout() time.Duration {
	return time.Duration(c.StorageTimeoutMillis) * time.Millisecond
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
