// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type serverFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		HashKey       string   `json:"hash_key" yaml:"hash_key"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Auth struct {
		Strategy       string   `json:"strategy" yaml:"strategy"`
		Username       string   `json:"username" yaml:"username"`
		Password       string   `json:"password" yaml:"password"`
		IdentityURL    string   `json:"identity_url" yaml:"identity_url"`
		IdentityAPIKey string   `json:"identity_api_key" yaml:"identity_api_key"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"auth" yaml:"auth"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		StreamHeartbeat Duration `json:"stream_heartbeat" yaml:"stream_heartbeat"`
	} `json:"server" yaml:"server"`

	Telemetry struct {
		OTLPEndpoint string `json:"otlp_endpoint" yaml:"otlp_endpoint"`
	} `json:"telemetry" yaml:"telemetry"`
}

type clientFileConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		HashKey        string   `json:"hash_key" yaml:"hash_key"`
	} `json:"adapter" yaml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`
}

func parseServerFile(path string) (*StructuredConfig, error) {
	var fileCfg serverFileConfig
	if err := decodeFile(path, &fileCfg); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  fileCfg.App.TokenSignKey,
			TokenIssuer:   fileCfg.App.TokenIssuer,
			TokenDuration: time.Duration(fileCfg.App.TokenDuration),
			HashKey:       fileCfg.App.HashKey,
			Version:       fileCfg.App.Version,
		},
		Auth: Auth{
			Strategy:       fileCfg.Auth.Strategy,
			Username:       fileCfg.Auth.Username,
			Password:       fileCfg.Auth.Password,
			IdentityURL:    fileCfg.Auth.IdentityURL,
			IdentityAPIKey: fileCfg.Auth.IdentityAPIKey,
			RequestTimeout: time.Duration(fileCfg.Auth.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     fileCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fileCfg.Server.RequestTimeout),
			StreamHeartbeat: time.Duration(fileCfg.Server.StreamHeartbeat),
		},
		Telemetry: Telemetry{
			OTLPEndpoint: fileCfg.Telemetry.OTLPEndpoint,
		},
	}, nil
}

func parseClientFile(path string) (*ClientConfig, error) {
	var fileCfg clientFileConfig
	if err := decodeFile(path, &fileCfg); err != nil {
		return nil, err
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			HashKey:        fileCfg.Adapter.HashKey,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: fileCfg.Storage.DB.DSN},
		},
	}, nil
}

// decodeFile picks the decoder by extension: .yaml and .yml use YAML,
// .json or no extension use JSON.
func decodeFile(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(v); err != nil {
			return fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", "":
		if err := json.NewDecoder(file).Decode(v); err != nil {
			return fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, ext)
	}

	return nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d", node.Line)
	}

	if n, err := time.ParseDuration(node.Value); err == nil {
		*d = Duration(n)
		return nil
	}

	var nanos int64
	if err := node.Decode(&nanos); err != nil {
		return fmt.Errorf("invalid duration %q at line %d", node.Value, node.Line)
	}
	*d = Duration(time.Duration(nanos))
	return nil
}
