package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppName     string
	Environment string
	LogLevel    string
	Port        string

	AWSRegion  string
	S3Bucket   string
	S3Prefix   string
	ContentDir string

	CacheTTL time.Duration

	RateLimitPerMinute int
	RateLimitPerHour   int

	CORSOrigins []string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	ttlSeconds := getEnvAsInt("CACHE_TTL_SECONDS", 300)
	if ttlSeconds < 0 {
		ttlSeconds = 0
	}
	if ttlSeconds > 86400 {
		ttlSeconds = 86400
	}

	return &Config{
		AppName:            getEnv("APP_NAME", "devblog"),
		Environment:        getEnv("ENVIRONMENT", "local"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Port:               getEnv("PORT", "8080"),
		AWSRegion:          getEnv("AWS_REGION", "eu-west-1"),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Prefix:           getEnv("S3_PREFIX", "posts/"),
		ContentDir:         getEnv("CONTENT_DIR", ""),
		CacheTTL:           time.Duration(ttlSeconds) * time.Second,
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitPerHour:   getEnvAsInt("RATE_LIMIT_PER_HOUR", 1000),
		CORSOrigins:        getEnvAsSlice("CORS_ORIGINS", []string{"*"}),
	}
}

// GetAppName returns the application name used in logs and service metadata.
func (c *Config) GetAppName() string { return c.AppName }

// GetEnvironment returns the deployment environment (local, dev, staging, prod).
func (c *Config) GetEnvironment() string { return c.Environment }

// GetLogLevel returns the minimum log level.
func (c *Config) GetLogLevel() string { return c.LogLevel }

// GetPort returns the HTTP listen port.
func (c *Config) GetPort() string { return c.Port }

// GetAWSRegion returns the region used for S3 operations.
func (c *Config) GetAWSRegion() string { return c.AWSRegion }

// GetS3Bucket returns the S3 bucket holding blog content.
func (c *Config) GetS3Bucket() string { return c.S3Bucket }

// GetS3Prefix returns the key prefix for posts within the bucket.
func (c *Config) GetS3Prefix() string { return c.S3Prefix }

// GetContentDir returns the local content directory, if configured.
func (c *Config) GetContentDir() string { return c.ContentDir }

// IsUsingS3 reports whether posts are served from S3. A configured content
// directory always wins over the bucket.
func (c *Config) IsUsingS3() bool {
	return c.S3Bucket != "" && c.ContentDir == ""
}

// GetCacheTTL returns the lifetime of cached content.
func (c *Config) GetCacheTTL() time.Duration { return c.CacheTTL }

// GetRateLimitPerMinute returns the per-client minute budget.
func (c *Config) GetRateLimitPerMinute() int { return c.RateLimitPerMinute }

// GetRateLimitPerHour returns the per-client hour budget.
func (c *Config) GetRateLimitPerHour() int { return c.RateLimitPerHour }

// IsRateLimitEnabled reports whether the limiter middleware is active.
// Disabled for local runs.
func (c *Config) IsRateLimitEnabled() bool {
	return c.Environment != "local"
}

// GetCORSOrigins returns the allowed CORS origins.
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get a comma-separated environment variable as a slice.
func getEnvAsSlice(name string, fallback []string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
