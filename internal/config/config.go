// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Server   ServerConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// InputConfig locates the three CSV datasets.
type InputConfig struct {
	// ProductsCSV is the path to products.csv (id,name,cost)
	ProductsCSV string `env:"PRODUCTS_CSV" required:"true"`

	// OrdersCSV is the path to orders.csv (id,customer,products)
	OrdersCSV string `env:"ORDERS_CSV" required:"true"`

	// CustomersCSV is the path to customers.csv (id,firstname,lastname)
	CustomersCSV string `env:"CUSTOMERS_CSV" required:"true"`
}

// OutputConfig controls how CLI reports are written.
type OutputConfig struct {
	// Format is one of csv, json, table, parquet (default: csv)
	Format string `env:"REPORT_FORMAT" default:"csv"`

	// Path is the output file; empty writes to stdout
	Path string `env:"REPORT_OUTPUT"`
}

// ServerConfig holds HTTP server settings for `acme serve`.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// SecurityConfig guards the report API.
type SecurityConfig struct {
	// APIKeys is a comma-separated list of accepted X-API-Key values
	APIKeys []string `env:"API_KEYS"`

	// RequireAPIKey rejects /api requests without a valid key (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
