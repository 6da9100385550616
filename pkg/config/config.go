// Package config provides configuration loading and management for quadimg.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"quadimg/pkg/codec"
	"quadimg/pkg/pixel"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Compression parameters
	Compression struct {
		// Tolerance is the maximum color distance between a subtree's leaves
		// and its average for the subtree to be collapsed
		Tolerance float64 `yaml:"tolerance"`

		// Metric names the color distance: euclidean or lab
		Metric string `yaml:"metric"`

		// Level is the zstd level used for .qtz output (1-22)
		Level int `yaml:"level"`
	} `yaml:"compression"`

	// Transform parameters, applied after pruning
	Transform struct {
		// FlipHorizontal mirrors the image across its vertical axis
		FlipHorizontal bool `yaml:"flipHorizontal"`

		// Rotations is the number of 90 degree counter-clockwise turns
		Rotations int `yaml:"rotations"`
	} `yaml:"transform"`

	// Render parameters
	Render struct {
		// Scale is the integer upscaling factor of rendered images
		Scale int `yaml:"scale"`

		// Outline draws leaf boundaries over the render
		Outline bool `yaml:"outline"`
	} `yaml:"render"`

	// Output parameters
	Output struct {
		// SaveIntermediaryResults determines whether each pipeline stage is rendered to disk
		SaveIntermediaryResults bool `yaml:"saveIntermediaryResults"`

		// IntermediaryDir is where stage renders are written
		IntermediaryDir string `yaml:"intermediaryDir"`

		// LogLevel is one of debug, info, warning or error
		LogLevel string `yaml:"logLevel"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Lossless by default: only exactly uniform regions collapse
	cfg.Compression.Tolerance = 0
	cfg.Compression.Metric = pixel.Euclidean.Name()
	cfg.Compression.Level = codec.DefaultLevel

	cfg.Transform.FlipHorizontal = false
	cfg.Transform.Rotations = 0

	cfg.Render.Scale = 1
	cfg.Render.Outline = false

	cfg.Output.SaveIntermediaryResults = false
	cfg.Output.IntermediaryDir = "intermediary_results"
	cfg.Output.LogLevel = "info"

	return cfg
}

// Validate checks that every value is in range
func (c *Config) Validate() error {
	if c.Compression.Tolerance < 0 {
		return fmt.Errorf("compression.tolerance must be non-negative, got %v", c.Compression.Tolerance)
	}
	if _, err := pixel.ParseMetric(c.Compression.Metric); err != nil {
		return fmt.Errorf("compression.metric: %w", err)
	}
	if c.Compression.Level < 1 || c.Compression.Level > 22 {
		return fmt.Errorf("compression.level must be between 1 and 22, got %d", c.Compression.Level)
	}
	if c.Transform.Rotations < 0 {
		return fmt.Errorf("transform.rotations must be non-negative, got %d", c.Transform.Rotations)
	}
	if c.Render.Scale < 1 {
		return fmt.Errorf("render.scale must be at least 1, got %d", c.Render.Scale)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
