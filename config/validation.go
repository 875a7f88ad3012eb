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

// ValidateConfig checks that the configuration carries everything the
// server needs to start in the current environment.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is required")
	}
	if cfg.SessionSecret == "" {
		errors = append(errors, "session secret is required")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" || cfg.DBUser == "" {
		errors = append(errors, "database host, port, name and user are required")
	}
	if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		errors = append(errors, "redis host and port (or a redis URL) are required")
	}

	// TLS material must be supplied in pairs; production requires it.
	if (cfg.TLSCertFile == "") != (cfg.TLSKeyFile == "") {
		errors = append(errors, "TLS certificate and key must both be set or both be empty")
	}
	if IsProduction() {
		if cfg.TLSCertFile == "" || cfg.TLSKeyFile == "" {
			errors = append(errors, "TLS certificate and key are required in production")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required")
		}
		if cfg.SessionSecret == "dev-session-secret" {
			errors = append(errors, "session_secret must not use the development default")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
