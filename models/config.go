// Package models defines the record, view, and configuration types shared
// across the explorer.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy constants. The year bound marks the COVID-19 research era and is
// a cleaning rule, not something inferred from the data.
const (
	DefaultYearMin   = 2019
	DefaultYearMax   = 2023
	DefaultSampleCap = 50000
)

// Config holds runtime configuration for the explorer. All fields have
// working defaults so the binary runs without a config file.
type Config struct {
	ListenAddr string   `yaml:"listen_addr"`
	DataPaths  []string `yaml:"data_paths"`
	SampleCap  int      `yaml:"sample_cap"`
	YearMin    int      `yaml:"year_min"`
	YearMax    int      `yaml:"year_max"`
}

// DefaultConfig returns the built-in configuration: the well-known data
// file candidates tried in order, the policy year bound, and the default
// sample cap.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: ":8080",
		DataPaths:  []string{"metadata.csv", "metadata_sample.csv"},
		SampleCap:  DefaultSampleCap,
		YearMin:    DefaultYearMin,
		YearMax:    DefaultYearMax,
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// A missing file is not an error; the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if len(cfg.DataPaths) == 0 {
		cfg.DataPaths = DefaultConfig().DataPaths
	}
	if cfg.SampleCap <= 0 {
		cfg.SampleCap = DefaultSampleCap
	}
	if cfg.YearMin == 0 {
		cfg.YearMin = DefaultYearMin
	}
	if cfg.YearMax == 0 {
		cfg.YearMax = DefaultYearMax
	}
	if cfg.YearMax < cfg.YearMin {
		return nil, fmt.Errorf("invalid year bound: year_max %d < year_min %d", cfg.YearMax, cfg.YearMin)
	}

	return cfg, nil
}
