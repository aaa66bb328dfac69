// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Authenticator strategies accepted in Auth.Strategy.
const (
	AuthStrategyStatic   = "static"
	AuthStrategyIdentity = "identity"
)

// StructuredConfig is the top-level configuration of the credentials server.
// It is populated by merging command-line flags, environment variables and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the integrity hash key and the version.
	App App `envPrefix:"APP_"`

	// Auth selects and configures the authenticator behind /api/auth/login.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the database settings. An empty DSN selects the
	// in-memory store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Telemetry enables OTLP trace export when an endpoint is set.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, payload integrity and versioning.
type App struct {
	// TokenSignKey is the secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey enables the HashSHA256 body check on writes when set.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth configures the sign-in strategy.
type Auth struct {
	// Strategy is "static" or "identity".
	// Env: AUTH_STRATEGY
	Strategy string `env:"STRATEGY"`

	// Username and Password are the static secret pair. Password may be a
	// bcrypt hash.
	// Env: AUTH_USERNAME, AUTH_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// IdentityURL is the signInWithPassword endpoint of the identity service.
	// Env: AUTH_IDENTITY_URL
	IdentityURL string `env:"IDENTITY_URL"`

	// IdentityAPIKey is sent as the "key" query parameter.
	// Env: AUTH_IDENTITY_API_KEY
	IdentityAPIKey string `env:"IDENTITY_API_KEY"`

	// RequestTimeout bounds one call to the identity service.
	// Env: AUTH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://..." opens PostgreSQL through pgx,
	// any other non-empty value is a SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every non-streaming request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StreamHeartbeat is the interval of keep-alive comments on SSE streams.
	// Env: SERVER_STREAM_HEARTBEAT
	StreamHeartbeat time.Duration `env:"STREAM_HEARTBEAT"`
}

// Telemetry configures trace export.
type Telemetry struct {
	// OTLPEndpoint is an OTLP/HTTP URL such as "http://localhost:4318".
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
//
// Sources are merged in the following priority order (the first source that
// sets a field wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	flags, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	return newConfigBuilder(func(c *StructuredConfig) string { return c.ConfigFilePath }).
		with(flags).
		withEnv().
		withFile(parseServerFile).
		with(defaultStructuredConfig()).
		build((*StructuredConfig).validate)
}

func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "creds-server",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Auth: Auth{
			Strategy:       AuthStrategyStatic,
			RequestTimeout: 10 * time.Second,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			StreamHeartbeat: 15 * time.Second,
		},
	}
}
