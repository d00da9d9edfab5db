package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for
// the current environment. Development and test runs may omit external
// service credentials; production must carry all of them.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is required")
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
			errors = append(errors, "DB_HOST, DB_PORT, DB_USER and DB_NAME are required for the postgres driver")
		}
		if IsProduction() && cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			errors = append(errors, "SQLITE_PATH is required for the sqlite driver")
		}
	default:
		errors = append(errors, fmt.Sprintf("unsupported DB_DRIVER %q (expected postgres or sqlite)", cfg.DBDriver))
	}

	if IsProduction() {
		if cfg.GeminiAPIKey == "" {
			errors = append(errors, "GEMINI_API_KEY is required in production")
		}
		if cfg.RedisPassword == "" && cfg.RedisURL == "" {
			errors = append(errors, "REDIS_PASSWORD or REDIS_URL is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
