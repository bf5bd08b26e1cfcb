package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"datalens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Upload   UploadConfig
	Session  SessionConfig
	Export   ExportConfig
}

// AnalysisConfig holds pipeline tuning knobs. The row threshold and the
// duplicate sample cap are deliberate configuration, not fixed behavior:
// they are latency safety valves whose exact values are arbitrary.
type AnalysisConfig struct {
	// LargeRowThreshold is the row count above which the pipeline runs in
	// reduced mode, skipping correlation and outlier detection.
	LargeRowThreshold int
	// DuplicateSampleLimit caps how many duplicate rows a report carries
	// for display.
	DuplicateSampleLimit int
}

// UploadConfig holds the pre-core validation limits enforced on uploads.
type UploadConfig struct {
	MaxFileBytes      int64
	AllowedExtensions []string
}

// SessionConfig holds upload-handle lifecycle settings.
type SessionConfig struct {
	HandleTTL     time.Duration
	SweepInterval time.Duration
}

// ExportConfig holds export artifact settings.
type ExportConfig struct {
	OutputDir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Analysis: AnalysisConfig{
			LargeRowThreshold:    getEnvIntOrDefault("DATALENS_LARGE_ROW_THRESHOLD", 10000),
			DuplicateSampleLimit: getEnvIntOrDefault("DATALENS_DUPLICATE_SAMPLE_LIMIT", 5),
		},
		Upload: UploadConfig{
			MaxFileBytes:      getEnvInt64OrDefault("DATALENS_MAX_FILE_BYTES", 10*1024*1024),
			AllowedExtensions: getEnvListOrDefault("DATALENS_ALLOWED_EXTENSIONS", []string{".csv", ".xlsx"}),
		},
		Session: SessionConfig{
			HandleTTL:     getEnvDurationOrDefault("DATALENS_HANDLE_TTL", 30*time.Minute),
			SweepInterval: getEnvDurationOrDefault("DATALENS_SWEEP_INTERVAL", 5*time.Minute),
		},
		Export: ExportConfig{
			OutputDir: getEnvOrDefault("DATALENS_EXPORT_DIR", "exports"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Analysis.LargeRowThreshold <= 0 {
		return errors.ConfigInvalid("DATALENS_LARGE_ROW_THRESHOLD must be positive")
	}
	if config.Analysis.DuplicateSampleLimit < 0 {
		return errors.ConfigInvalid("DATALENS_DUPLICATE_SAMPLE_LIMIT must not be negative")
	}
	if config.Upload.MaxFileBytes <= 0 {
		return errors.ConfigInvalid("DATALENS_MAX_FILE_BYTES must be positive")
	}
	if len(config.Upload.AllowedExtensions) == 0 {
		return errors.ConfigInvalid("DATALENS_ALLOWED_EXTENSIONS must not be empty")
	}
	if config.Session.HandleTTL <= 0 {
		return errors.ConfigInvalid("DATALENS_HANDLE_TTL must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
