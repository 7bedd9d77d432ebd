package usecasecontract

import "time"

// IConfigProvider exposes application configuration to the layers that need it.
type IConfigProvider interface {
	GetAppName() string
	GetEnvironment() string
	GetLogLevel() string
	GetPort() string

	GetAWSRegion() string
	GetS3Bucket() string
	GetS3Prefix() string
	GetContentDir() string
	// IsUsingS3 reports whether posts are served from S3. A configured
	// CONTENT_DIR always wins over the bucket.
	IsUsingS3() bool

	GetCacheTTL() time.Duration

	GetRateLimitPerMinute() int
	GetRateLimitPerHour() int
	// IsRateLimitEnabled is false for local runs so offline development is
	// never throttled.
	IsRateLimitEnabled() bool

	GetCORSOrigins() []string
}
