package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/octopus-money/octopus/internal/model"
)

// Config represents the top-level octopus.yaml configuration.
type Config struct {
	Profile    ProfileConfig    `yaml:"profile"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Rules      RulesConfig      `yaml:"rules"`
}

// ProfileConfig identifies the user profile.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// ThresholdsConfig maps analyzer confidence onto review statuses.
type ThresholdsConfig struct {
	AutoConfirm float64 `yaml:"auto_confirm"`
	ReviewFlag  float64 `yaml:"review_flag"`
}

// RulesConfig points at an optional user rules file, relative to the data
// directory unless absolute.
type RulesConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Review classifies a confidence score against the thresholds. At or above
// auto_confirm the guess is trusted as-is; at or above review_flag it is
// worth a look; below that the user should fill in the gaps by hand.
func (t ThresholdsConfig) Review(confidence decimal.Decimal) model.ReviewStatus {
	if confidence.GreaterThanOrEqual(decimal.NewFromFloat(t.AutoConfirm)) {
		return model.StatusAutoConfirmed
	}
	if confidence.GreaterThanOrEqual(decimal.NewFromFloat(t.ReviewFlag)) {
		return model.StatusPendingReview
	}
	return model.StatusManual
}

// Load reads an octopus.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default(profileName string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:     profileName,
			Currency: "INR",
		},
		Thresholds: ThresholdsConfig{
			AutoConfirm: 0.9,
			ReviewFlag:  0.5,
		},
		Rules: RulesConfig{
			Path: "rules.toml",
		},
	}
}
