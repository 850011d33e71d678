package webhook

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig parses a YAML verifier configuration:
//
//	secret: whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw
//	tolerance: 5m
//
// The result is validated by building a Verifier from it, so a returned
// Config is always accepted by NewWithConfig.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("webhook: parse config: %w", err)
	}

	if _, err := NewWithConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfigFile reads and parses the YAML configuration at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return LoadConfig(data)
}
