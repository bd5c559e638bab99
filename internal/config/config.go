// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads and writes the algolab TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/algolab/algolab/internal/domain"
	"github.com/algolab/algolab/internal/selection"
	"github.com/algolab/algolab/internal/window"
)

// Default values written by `config init`.
const (
	DefaultAPIURL  = "http://localhost:3000"
	DefaultTimeout = "10s"
)

var (
	// ErrInvalidConfig is returned for a config file with out-of-range values.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrConfigExists is returned when init would overwrite a file.
	ErrConfigExists = errors.New("config file already exists")
)

// Config is the on-disk configuration.
type Config struct {
	API       APIConfig       `toml:"api" json:"api" yaml:"api"`
	List      ListConfig      `toml:"list" json:"list" yaml:"list"`
	Selection SelectionConfig `toml:"selection" json:"selection" yaml:"selection"`
	Results   ResultsConfig   `toml:"results" json:"results" yaml:"results"`
}

// APIConfig locates the benchmark service.
type APIConfig struct {
	URL     string `toml:"url" json:"url" yaml:"url"`
	Timeout string `toml:"timeout" json:"timeout" yaml:"timeout"`
	Token   string `toml:"token,omitempty" json:"token,omitempty" yaml:"token,omitempty"`
}

// ListConfig tunes the virtualized movie list.
type ListConfig struct {
	RowHeight float64 `toml:"row_height" json:"row_height" yaml:"row_height"`
	Overscan  int     `toml:"overscan" json:"overscan" yaml:"overscan"`
}

// SelectionConfig controls how selections survive catalog refreshes.
type SelectionConfig struct {
	StalePolicy string `toml:"stale_policy" json:"stale_policy" yaml:"stale_policy"`
}

// ResultsConfig picks the initial ordering metric.
type ResultsConfig struct {
	Metric string `toml:"metric" json:"metric" yaml:"metric"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			URL:     DefaultAPIURL,
			Timeout: DefaultTimeout,
		},
		List: ListConfig{
			RowHeight: 1,
			Overscan:  window.DefaultOverscan,
		},
		Selection: SelectionConfig{
			StalePolicy: selection.StaleKeep.String(),
		},
		Results: ResultsConfig{
			Metric: string(domain.MetricTime),
		},
	}
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from --config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field that has a restricted range.
func (c Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("%w: api.url is empty", ErrInvalidConfig)
	}

	if _, err := c.Timeout(); err != nil {
		return err
	}

	if c.List.RowHeight <= 0 {
		return fmt.Errorf("%w: list.row_height must be positive", ErrInvalidConfig)
	}

	if c.List.Overscan < 0 {
		return fmt.Errorf("%w: list.overscan must not be negative", ErrInvalidConfig)
	}

	if _, err := c.StalePolicy(); err != nil {
		return fmt.Errorf("%w: selection.stale_policy: %w", ErrInvalidConfig, err)
	}

	if _, err := c.Metric(); err != nil {
		return fmt.Errorf("%w: results.metric: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Timeout parses api.timeout.
func (c Config) Timeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: api.timeout: %w", ErrInvalidConfig, err)
	}

	if timeout <= 0 {
		return 0, fmt.Errorf("%w: api.timeout must be positive", ErrInvalidConfig)
	}

	return timeout, nil
}

// StalePolicy parses selection.stale_policy.
func (c Config) StalePolicy() (selection.StalePolicy, error) {
	return selection.ParseStalePolicy(c.Selection.StalePolicy)
}

// Metric parses results.metric.
func (c Config) Metric() (domain.Metric, error) {
	return domain.ParseMetric(c.Results.Metric)
}

// Save writes cfg to path, creating parent directories. The write holds an
// exclusive lock next to the file. Unless overwrite is set an existing file
// is left alone and ErrConfigExists is returned.
func Save(path string, cfg Config, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock config: %w", err)
	}

	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(path + ".lock")
	}()

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
