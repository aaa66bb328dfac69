// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL or "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the timeout for non-streaming requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// HashKey signs PUT bodies with the HashSHA256 header when set.
	// Env: ADAPTER_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file holding the persisted session.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB `envPrefix:"DB_"`
}

// ClientConfig is the top-level configuration of the terminal client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	Storage ClientStorage `envPrefix:"STORAGE_"`

	// ConfigFilePath is the optional JSON or YAML file.
	// Env: CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// GetClientConfig builds and validates the client configuration.
//
// overrides carries values set through command-line flags and takes
// precedence over environment variables, the config file and defaults.
// It may be nil.
func GetClientConfig(overrides *ClientConfig) (*ClientConfig, error) {
	b := newConfigBuilder(func(c *ClientConfig) string { return c.ConfigFilePath })
	if overrides != nil {
		b = b.with(overrides)
	}

	return b.withEnv().
		withFile(parseClientFile).
		with(defaultClientConfig()).
		build((*ClientConfig).validate)
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: "creds-client.db"},
		},
	}
}
