package config

import (
	"os"
	"path/filepath"
	"strings"

	"fjacquet/pain-gen/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file in the working directory or its
// parent, without overriding variables already set. It returns the file
// loaded, or "" when none was found.
func LoadEnv(logger logging.Logger) string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			if logger != nil {
				logger.WithError(err).Warn("Error loading .env file", logging.F(logging.FieldFile, candidate))
			}
			return ""
		}
		if logger != nil {
			logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, candidate))
		}
		return candidate
	}
	return ""
}

// EarlyLogLevel returns LOG_LEVEL, falling back to PAIN_LOG_LEVEL and then
// "info". It is used before the config file has been read.
func EarlyLogLevel() string {
	for _, key := range []string{"LOG_LEVEL", EnvPrefix + "_LOG_LEVEL"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return strings.ToLower(v)
		}
	}
	return "info"
}
