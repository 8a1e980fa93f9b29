// Package config loads and persists calculator configuration. Files may be
// YAML or JSON; YAML is tried first.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hamzaelsherif03/Calculator/grid"
	"github.com/hamzaelsherif03/Calculator/report"
	"gopkg.in/yaml.v3"
)

// Config represents the complete calculator configuration.
type Config struct {
	Grid   grid.Parameters `json:"grid" yaml:"grid"`
	Report report.Options  `json:"report" yaml:"report"`
	Log    LogConfig       `json:"log" yaml:"log"`
	Store  StoreConfig     `json:"store" yaml:"store"`
	Web    WebConfig       `json:"web" yaml:"web"`
	Alert  AlertConfig     `json:"alert" yaml:"alert"`
}

// LogConfig controls log output. File settings only apply when File is set;
// rotation values of zero keep the lumberjack defaults.
type LogConfig struct {
	Level      string `json:"level" yaml:"level"`
	File       string `json:"file,omitempty" yaml:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
	MaxAgeDays int    `json:"max_age_days,omitempty" yaml:"max_age_days,omitempty"`
}

// StoreConfig contains preset store parameters.
type StoreConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// WebConfig contains dashboard server parameters.
type WebConfig struct {
	Listen string `json:"listen" yaml:"listen"`
}

// AlertConfig contains risk alerting parameters. WarnDistance is how close
// the margin-call price may come to the current price before the watcher
// escalates to critical.
type AlertConfig struct {
	Bell         bool    `json:"bell" yaml:"bell"`
	WarnDistance float64 `json:"warn_distance" yaml:"warn_distance"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if c.Report.CurveSteps < 0 {
		return fmt.Errorf("report.curve_steps must not be negative")
	}
	for _, d := range c.Report.Drops {
		if d < 0 {
			return fmt.Errorf("report.drops must not contain negative values")
		}
	}
	for _, f := range c.Report.EquityTargets {
		if f <= 0 || f >= 1 {
			return fmt.Errorf("report.equity_targets must be between 0 and 1")
		}
	}
	if c.Alert.WarnDistance < 0 {
		return fmt.Errorf("alert.warn_distance must not be negative")
	}
	return nil
}

// Default returns a configuration with the canonical parameter set.
func Default() *Config {
	return &Config{
		Grid:   grid.Defaults(),
		Report: report.DefaultOptions(),
		Log:    LogConfig{Level: "info"},
		Store:  StoreConfig{DBPath: "./gridcalc.db"},
		Web:    WebConfig{Listen: ":8087"},
		Alert:  AlertConfig{WarnDistance: 25},
	}
}
