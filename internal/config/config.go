// Package config provides configuration structures and validation for the application.
// It handles environment-based configuration for the HTTP server, session lifecycle,
// ledger presentation defaults and the export worker pool.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration with settings for all components.
// Each field represents a subsystem's configuration and is validated during application startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Session     SessionConfig
	Ledger      LedgerConfig
	Export      ExportConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// SessionConfig contains session lifecycle configuration
type SessionConfig struct {
	IdleTimeout   time.Duration // Sessions untouched for longer are discarded
	SweepInterval time.Duration // How often idle sessions are looked for
	MaxActive     int           // Upper bound on concurrently open sessions
}

// LedgerConfig contains presentation defaults for ledger views
type LedgerConfig struct {
	RecentLimit int    // Entries shown in the recent-entries table
	Currency    string // ISO 4217 code used to format money
}

// ExportConfig contains workbook export configuration
type ExportConfig struct {
	WorkerPoolSize int // Maximum number of exports rendered at once
	SheetName      string
}

// validate performs comprehensive validation of all configuration values,
// ensuring they meet minimum requirements and logical constraints
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate Session config
	if c.Session.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SESSION_IDLE_TIMEOUT must be greater than 0")
	}
	if c.Session.SweepInterval <= 0 {
		validationErrors = append(validationErrors, "SESSION_SWEEP_INTERVAL must be greater than 0")
	}
	if c.Session.MaxActive < 0 {
		validationErrors = append(validationErrors, "SESSION_MAX_ACTIVE must not be negative")
	}

	// Validate Ledger config
	if c.Ledger.RecentLimit <= 0 {
		validationErrors = append(validationErrors, "LEDGER_RECENT_LIMIT must be greater than 0")
	}
	if len(c.Ledger.Currency) != 3 {
		validationErrors = append(validationErrors, "LEDGER_CURRENCY must be a 3-letter code")
	}

	// Validate Export config
	if c.Export.WorkerPoolSize <= 0 {
		validationErrors = append(validationErrors, "EXPORT_WORKER_POOL_SIZE must be greater than 0")
	}
	if c.Export.SheetName == "" {
		validationErrors = append(validationErrors, "EXPORT_SHEET_NAME is required")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
