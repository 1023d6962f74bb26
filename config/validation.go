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

// ValidateConfig checks that the configuration is usable in the current
// environment. Development and test tolerate defaults; production and CI
// must supply every sensitive value explicitly.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is required")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errors = append(errors, "database host, port, and name are required")
	}

	if IsProduction() || IsCI() {
		if cfg.JWTSecret == "" {
			errors = append(errors, "jwt secret is required")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "database password is required")
		}
		if cfg.DBSSLMode == "disable" && IsProduction() {
			errors = append(errors, "database ssl must not be disabled in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
