// Package config holds run defaults and named presets. No file is read
// unless the user passes --config or --preset explicitly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultQubits     = 5
	DefaultShots      = 1024
	DefaultTensorSize = 5
	DefaultLambda     = 1.0
	DefaultSeed       = 42
)

// Config parametrizes one non-interactive run.
type Config struct {
	Qubits     int     `yaml:"qubits"`
	Complex    bool    `yaml:"complex"`
	Shots      int     `yaml:"shots"`
	TensorSize int     `yaml:"tensor_size"`
	Lambda     float64 `yaml:"lambda"`
	Seed       int64   `yaml:"seed"`
}

// Default returns the built-in run parameters.
func Default() *Config {
	return &Config{
		Qubits:     DefaultQubits,
		Complex:    true,
		Shots:      DefaultShots,
		TensorSize: DefaultTensorSize,
		Lambda:     DefaultLambda,
		Seed:       DefaultSeed,
	}
}

// Validate reports the first out-of-range parameter.
func (c *Config) Validate() error {
	if c.Qubits < 2 || c.Qubits > 10 {
		return fmt.Errorf("qubits must be in [2,10], got %d", c.Qubits)
	}
	if c.Shots < 1 {
		return fmt.Errorf("shots must be positive, got %d", c.Shots)
	}
	if c.TensorSize < 2 {
		return fmt.Errorf("tensor_size must be at least 2, got %d", c.TensorSize)
	}
	return nil
}

// Load reads a YAML config, applying defaults for absent fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
