// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, hashing key, logging.
	App App `envPrefix:"APP_"`

	// Storage holds the optional validation history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the validator service.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the validator service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of client background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds presentation settings of the terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// HashKey keys the card fingerprint stored in the validation history.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogLevel is one of debug, info, warn, error.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP API listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the history database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the validation history database.
type DB struct {
	// DSN is a PostgreSQL URL or a SQLite file path. Empty disables history
	// persistence.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver forces "pgx" or "sqlite3". When empty it is derived from DSN.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Database driver names accepted by [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// ResolveDriver returns the explicit Driver or guesses it from DSN.
func (d DB) ResolveDriver() string {
	if d.Driver != "" {
		return d.Driver
	}

	dsn := strings.ToLower(strings.TrimSpace(d.DSN))
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return DriverPostgres
	}

	return DriverSQLite
}

// Adapter holds the client's connection settings for the validator service.
type Adapter struct {
	// HTTPAddress is the validator base URL ("http://host:port" or
	// "host:port").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound validation call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background workers.
type Workers struct {
	// HealthInterval is how often the client polls GET /api/health.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Client holds presentation settings of the terminal client.
type Client struct {
	// InputLimit caps how many characters the card input accepts.
	// Env: CLIENT_INPUT_LIMIT
	InputLimit int `env:"INPUT_LIMIT"`
}

// Defaults used when no source provides a value.
const (
	DefaultVersion          = "dev"
	DefaultServerAddress    = "localhost:5000"
	DefaultValidatorAddress = "http://localhost:5000"
	DefaultRequestTimeout   = 10 * time.Second
	DefaultHealthInterval   = 30 * time.Second
	DefaultInputLimit       = 24
	DefaultLogLevel         = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultValidatorAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{HealthInterval: DefaultHealthInterval},
		Client:  Client{InputLimit: DefaultInputLimit},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. The JSON file path is resolved from the environment and the
// flags before the file is read.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
