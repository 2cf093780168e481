// Package config holds the trading-partner identity the validator enforces.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default identity values for the Colón station deployment
var (
	DefaultProvider    = "GASOLINERA COLON"
	DefaultAllowedRFCs = []string{"GCO740121MC5", "TSB740430489"}
)

// Config defines the expected trading partner identity
type Config struct {
	// Provider is the expected issuer name (Emisor Nombre)
	Provider string `yaml:"provider"`
	// AllowedRFCs are the recipient tax IDs this system is registered under
	AllowedRFCs []string `yaml:"allowed_rfcs"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Provider:    DefaultProvider,
		AllowedRFCs: append([]string(nil), DefaultAllowedRFCs...),
	}
}

// Load reads configuration from a YAML file. Missing fields fall back to
// defaults; values are normalized to uppercase for comparison.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize uppercases identity values so comparisons are case-insensitive
func (c *Config) Normalize() {
	c.Provider = strings.ToUpper(strings.TrimSpace(c.Provider))
	for i, rfc := range c.AllowedRFCs {
		c.AllowedRFCs[i] = strings.ToUpper(strings.TrimSpace(rfc))
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("config: provider name must not be empty")
	}
	if len(c.AllowedRFCs) == 0 {
		return fmt.Errorf("config: allowed_rfcs must not be empty")
	}
	for _, rfc := range c.AllowedRFCs {
		if rfc == "" {
			return fmt.Errorf("config: allowed_rfcs must not contain empty entries")
		}
	}
	return nil
}

// AllowsRFC reports whether rfc (already uppercased) is in the allow-list
func (c Config) AllowsRFC(rfc string) bool {
	for _, allowed := range c.AllowedRFCs {
		if rfc == allowed {
			return true
		}
	}
	return false
}
