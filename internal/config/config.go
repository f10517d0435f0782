// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Credential store backends accepted by [Credentials.Backend].
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

const (
	defaultAPIAddress     = "http://localhost:8080"
	defaultRequestTimeout = 15 * time.Second
	defaultServerAddress  = "localhost:8080"
	defaultQueueSize      = 16
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional JSON file, environment variables
// and command-line flags.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
//
// All variables additionally carry the global TIL_ prefix.
type StructuredConfig struct {
	// App holds application-level secrets.
	App App `envPrefix:"APP_"`

	// Adapter holds the address of the TIL API and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the credential store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the stub API server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Workers holds settings of the session notification queue.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: TIL_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceSecret is the passphrase the at-rest sealing key for the bearer
	// token is derived from. Required by persistent credential backends.
	// Env: TIL_APP_DEVICE_SECRET
	DeviceSecret string `env:"DEVICE_SECRET"`
}

// Adapter holds outbound HTTP settings.
type Adapter struct {
	// HTTPAddress is the TIL API host, with or without scheme
	// (e.g. "https://til.example.com" or "localhost:8080").
	// Env: TIL_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request round-trip (e.g. "15s").
	// Env: TIL_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	Credentials Credentials `envPrefix:"CREDENTIALS_"`
}

// Credentials selects where the bearer token is persisted.
type Credentials struct {
	// Backend is one of "sqlite", "file" or "memory".
	// Env: TIL_STORAGE_CREDENTIALS_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the SQLite database path or the JSON file path, depending on
	// Backend. Ignored by the memory backend.
	// Env: TIL_STORAGE_CREDENTIALS_DSN
	DSN string `env:"DSN"`
}

// Server holds the stub API server settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: TIL_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey signs the tokens the stub server issues.
	// Env: TIL_SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: TIL_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the client log file path. Empty means stderr.
	// Env: TIL_LOG_FILE
	File string `env:"FILE"`
}

// Workers holds settings of background execution contexts.
type Workers struct {
	// QueueSize is the initial capacity of the session notification queue.
	// Env: TIL_WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. flags carries values collected by the command-line
// parser; its zero value means no flag was given.
func GetStructuredConfig(flags Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    defaultAPIAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			Credentials: Credentials{
				Backend: BackendSQLite,
				DSN:     defaultCredentialsPath(),
			},
		},
		Server: Server{
			HTTPAddress: defaultServerAddress,
		},
		Log: Log{
			Level: "info",
		},
		Workers: Workers{
			QueueSize: defaultQueueSize,
		},
	}
}

func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "credentials.db"
	}
	return filepath.Join(dir, "til", "credentials.db")
}
