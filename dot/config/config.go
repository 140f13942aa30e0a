// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package config loads, validates and exports the slotguard toml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

// Database backends
const (
	BackendBadger  = "badger"
	BackendChainDB = "chaindb"
	BackendMemory  = "memory"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global   GlobalConfig   `toml:"global,omitempty"`
	Database DatabaseConfig `toml:"database,omitempty"`
	Metrics  MetricsConfig  `toml:"metrics,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	BasePath string `toml:"basepath,omitempty" validate:"required"`
	LogLvl   string `toml:"log,omitempty" validate:"oneof=crit error eror warn info debug dbug trace trce"`
}

// DatabaseConfig is to marshal/unmarshal toml database config vars
type DatabaseConfig struct {
	Backend  string `toml:"backend,omitempty" validate:"oneof=badger chaindb memory"`
	InMemory bool   `toml:"in-memory,omitempty"`
}

// MetricsConfig is to marshal/unmarshal toml metrics config vars
type MetricsConfig struct {
	Enabled bool   `toml:"enabled,omitempty"`
	Address string `toml:"address,omitempty" validate:"hostname_port"`
}

// Default returns the default configuration.
func Default() *Config {
	basePath := ".slotguard"
	home, err := os.UserHomeDir()
	if err == nil {
		basePath = filepath.Join(home, basePath)
	}

	return &Config{
		Global: GlobalConfig{
			BasePath: basePath,
			LogLvl:   "info",
		},
		Database: DatabaseConfig{
			Backend: BackendBadger,
		},
		Metrics: MetricsConfig{
			Address: "localhost:9876",
		},
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

// Load loads the toml configuration file at the given path on top
// of the default configuration, and validates the result.
func Load(path string) (cfg *Config, err error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing config file: %w", closeErr)
		}
	}()

	cfg = Default()
	err = toml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Export writes the configuration to a toml file at the given path.
func Export(cfg *Config, path string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}
