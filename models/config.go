package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime defaults loaded from rfp-triage.yaml. CLI flags
// override any value set here.
type Config struct {
	Workers int    `yaml:"workers"`
	DBPath  string `yaml:"db_path"`
	Output  string `yaml:"output"` // json or yaml
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Workers: 4,
		Output:  "json",
	}
}

// LoadConfig reads a YAML config file. A missing file is not an error: the
// defaults are returned so the binary works with zero setup.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.Output == "" {
		cfg.Output = DefaultConfig().Output
	}

	return cfg, nil
}
