package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. The extraction core never
// reads it (or any other global state); only the batch runner and the I/O
// collaborators are configured from here.
type Config struct {
	Intake IntakeConfig
	Submit SubmitConfig
}

// IntakeConfig holds intake-directory and batch-processing configuration.
type IntakeConfig struct {
	Dir         string
	ArchiveDir  string
	Workers     int
	FileTimeout time.Duration
}

// SubmitConfig holds aggregation-endpoint configuration.
type SubmitConfig struct {
	URL     string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Intake: IntakeConfig{
			Dir:         getEnv("PEDIDOS_DIR", "./pedidos"),
			ArchiveDir:  getEnv("PEDIDOS_ARCHIVE_DIR", "./pedidos/lidos"),
			Workers:     getEnvAsInt("PEDIDOS_WORKERS", 4),
			FileTimeout: getEnvAsDuration("PEDIDOS_FILE_TIMEOUT", 30*time.Second),
		},
		Submit: SubmitConfig{
			URL:     getEnv("WEBAPP_URL", ""),
			Timeout: getEnvAsDuration("WEBAPP_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate checks the loaded configuration. The endpoint URL is only
// required when the batch will actually submit.
func (c *Config) Validate(submitting bool) error {
	if c.Intake.Dir == "" {
		return NewAppError("CONFIG_ERROR", "PEDIDOS_DIR is required", ErrInvalidInput)
	}
	if submitting && c.Submit.URL == "" {
		return NewAppError("CONFIG_ERROR", "WEBAPP_URL is required", ErrInvalidInput)
	}
	if c.Intake.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "PEDIDOS_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
