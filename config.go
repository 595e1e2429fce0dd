package valuation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the policies of the engine that are not fixed by the data.
type Config struct {
	TopN       int         `yaml:"top_n"`
	OrderMatch string      `yaml:"order_match"`
	Currency   string      `yaml:"currency"`
	LogLevel   string      `yaml:"log_level"`
	Paths      SourcePaths `yaml:"paths"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		TopN:       DefaultTopN,
		OrderMatch: MatchSubstring.String(),
		Currency:   "USD",
		LogLevel:   "info",
		Paths:      DefaultSourcePaths(),
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
//
// Keys absent from the file keep their default value.
func LoadConfig(name string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config %q: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks the policies.
func (c Config) Validate() error {
	if c.TopN < 1 {
		return fmt.Errorf("%w: top_n must be at least 1, got %d", ErrInvalidConfig, c.TopN)
	}
	if _, err := ParseMatchPolicy(c.OrderMatch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("%w: currency must be an ISO 4217 code, got %q", ErrInvalidConfig, c.Currency)
	}
	return nil
}

// MatchPolicy returns the parsed order match policy.
func (c Config) MatchPolicy() MatchPolicy {
	p, _ := ParseMatchPolicy(c.OrderMatch)
	return p
}
