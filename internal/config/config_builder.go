// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs and merges them in insertion order.
// A field set by an earlier source is never overwritten by a later one.
type configBuilder[T any] struct {
	configs  []*T
	filePath func(*T) string
	err      error
}

func newConfigBuilder[T any](filePath func(*T) string) *configBuilder[T] {
	return &configBuilder[T]{
		configs:  make([]*T, 0, 4),
		filePath: filePath,
	}
}

func (b *configBuilder[T]) build(validate func(*T) error) (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(T)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if validate == nil {
		return config, nil
	}
	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder[T]) with(cfg *T) *configBuilder[T] {
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder[T]) withEnv() *configBuilder[T] {
	envCfg := new(T)
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFile loads the file named by the first source that specifies one.
func (b *configBuilder[T]) withFile(parse func(path string) (*T, error)) *configBuilder[T] {
	var path string
	for _, cfg := range b.configs {
		if p := b.filePath(cfg); p != "" {
			path = p
			break
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parse(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}
