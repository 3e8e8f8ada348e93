package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 1024 * 1024 // 1MB
	DefaultConcurrency    = 0           // 0 means fasthttp's default
	DefaultAllowedOrigin  = "*"
)

// Config holds the configuration for the plagiarism check server.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	// CorpusFile is an optional YAML file of reference documents.
	// Empty means the built-in corpus.
	CorpusFile string
	WarmUp     bool
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int
	Concurrency    int
	AllowedOrigin  string
}

// LogConfig holds logger settings.
type LogConfig struct {
	File string
	JSON bool
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           GetIntEnv("PLAGIARISM_PORT", DefaultPort),
			ReadTimeout:    GetDurationEnv("PLAGIARISM_READ_TIMEOUT", DefaultReadTimeout),
			WriteTimeout:   GetDurationEnv("PLAGIARISM_WRITE_TIMEOUT", DefaultWriteTimeout),
			MaxRequestSize: GetIntEnv("PLAGIARISM_MAX_REQUEST_SIZE", DefaultMaxRequestSize),
			Concurrency:    GetIntEnv("PLAGIARISM_CONCURRENCY", DefaultConcurrency),
			AllowedOrigin:  GetStringEnv("PLAGIARISM_ALLOWED_ORIGIN", DefaultAllowedOrigin),
		},
		Log: LogConfig{
			File: GetStringEnv("PLAGIARISM_LOG_FILE", ""),
			JSON: GetBoolEnv("PLAGIARISM_LOG_JSON", true),
		},
		CorpusFile: GetStringEnv("PLAGIARISM_CORPUS_FILE", ""),
		WarmUp:     GetBoolEnv("PLAGIARISM_WARM_UP", true),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return errors.New("read and write timeouts must be greater than 0")
	}
	if c.Server.MaxRequestSize <= 0 {
		return errors.New("max request size must be greater than 0")
	}
	if c.Server.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}
	if c.Server.AllowedOrigin == "" {
		return errors.New("allowed origin must not be empty")
	}
	return nil
}

// GetStringEnv gets a string environment variable with a default value
func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnv gets an integer environment variable with a default value
func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetBoolEnv gets a boolean environment variable with a default value
func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetDurationEnv gets a duration environment variable with a default value
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
