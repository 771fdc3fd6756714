// Package config loads and validates the replay configuration file.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/quantfold/signalstream/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StrategyConfig names a built-in strategy and its numeric parameters.
type StrategyConfig struct {
	// Kind selects the strategy.
	Kind string `yaml:"kind" validate:"required,oneof=sma_cross rsi_threshold"`
	// Params holds the strategy's named numeric parameters.
	Params map[string]float64 `yaml:"params"`
}

// Config is the file-loadable engine configuration.
type Config struct {
	// Mode selects the rule-composition style.
	Mode string `yaml:"mode" validate:"required,oneof=recompute incremental"`
	// HistorySize is the per-symbol window length; must be at least 1.
	HistorySize int `yaml:"history_size" validate:"required,min=1"`
	// Capacity bounds each per-symbol buffer; 0 retains full history.
	Capacity int `yaml:"capacity" validate:"min=0"`
	// Name labels emitted signals.
	Name string `yaml:"name"`
	// Strategy selects and parametrizes the rule set.
	Strategy StrategyConfig `yaml:"strategy" validate:"required"`
}

// Parse unmarshals and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads, unmarshals and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to read config file", err)
	}

	return Parse(data)
}

// Validate checks the configuration fields.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return nil
}
