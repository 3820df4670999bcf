// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/power"
)

// EnvMaxExponent overrides Config.MaxExponent when set
const EnvMaxExponent = "POWER_MAX_EXPONENT"

// DefaultMaxExponent leaves the exponent unbounded unless configured
const DefaultMaxExponent int64 = power.DefaultMaxExponent

// Config holds power configuration
type Config struct {
	MaxExponent int64 `yaml:"max_exponent"`
	Debug       bool  `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxExponent: DefaultMaxExponent,
		Debug:       false,
	}
}

// DefaultConfigPath returns $HOME/.config/power/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "power", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with values from the environment
func ApplyEnv(cfg *Config) error {
	v, ok := os.LookupEnv(EnvMaxExponent)
	if !ok || v == "" {
		return nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", EnvMaxExponent, err)
	}
	cfg.MaxExponent = n

	return nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
