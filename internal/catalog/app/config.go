package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Optional: issuer claim for session tokens (default: prepdeck-catalog)
	JWTSecret string // Required: HS256 signing secret, at least 32 bytes

	SessionTTL   time.Duration // Optional: session token lifetime (default: 7 days)
	OTPTTL       time.Duration // Optional: password reset code lifetime (default: 10m)
	DatabaseFile string        // Optional: path to SQLite database file (default: ./catalog.db)

	S3Region    string // Optional: object storage region (default: us-east-1)
	S3Endpoint  string // Optional: object storage endpoint, for S3-compatible servers
	S3Bucket    string // Optional: syllabus bucket; empty disables the syllabus endpoints
	S3AccessKey string // Optional: static access key for object storage
	S3SecretKey string // Optional: static secret key for object storage

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("CATALOG_ISSUER", "prepdeck-catalog"),
		JWTSecret:            os.Getenv("CATALOG_JWT_SECRET"),
		SessionTTL:           getEnvDurationOrDefault("CATALOG_SESSION_TTL", 7*24*time.Hour),
		OTPTTL:               getEnvDurationOrDefault("CATALOG_OTP_TTL", 10*time.Minute),
		DatabaseFile:         getEnvOrDefault("CATALOG_DATABASE_FILE", "catalog.db"),
		S3Region:             getEnvOrDefault("CATALOG_S3_REGION", "us-east-1"),
		S3Endpoint:           os.Getenv("CATALOG_S3_ENDPOINT"),
		S3Bucket:             os.Getenv("CATALOG_S3_BUCKET"),
		S3AccessKey:          os.Getenv("CATALOG_S3_ACCESS_KEY"),
		S3SecretKey:          os.Getenv("CATALOG_S3_SECRET_KEY"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
