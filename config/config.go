package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"conviction/game"
)

// Config is everything a game accepts at creation: termination settings, the
// order timeout, the random seed, and the rule tunables.
type Config struct {
	Seed             uint64 `yaml:"seed"`
	VictoryThreshold int    `yaml:"victory_threshold"`
	TurnLimit        int    `yaml:"turn_limit"`
	OrderTimeoutMs   int    `yaml:"order_timeout_ms"`

	Tunables game.Tunables `yaml:"tunables"`
}

// Default returns the standard rule set and termination settings.
func Default() Config {
	return Config{
		Seed:             1,
		VictoryThreshold: 50,
		TurnLimit:        20,
		OrderTimeoutMs:   30_000,
		Tunables:         game.StandardTunables(),
	}
}

// Load overlays a YAML file onto the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.VictoryThreshold <= 0 {
		return fmt.Errorf("victory_threshold must be positive, got %d", c.VictoryThreshold)
	}
	if c.TurnLimit <= 0 {
		return fmt.Errorf("turn_limit must be positive, got %d", c.TurnLimit)
	}
	if c.OrderTimeoutMs < 0 {
		return fmt.Errorf("order_timeout_ms must not be negative, got %d", c.OrderTimeoutMs)
	}
	for name, p := range map[string]float64{
		"regional_event_chance": c.Tunables.RegionalEventChance,
		"global_event_chance":   c.Tunables.GlobalEventChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be a probability, got %g", name, p)
		}
	}
	return nil
}

// OrderTimeout is how long the policy draft waits for missing orders before
// substituting pass orders.
func (c Config) OrderTimeout() time.Duration {
	return time.Duration(c.OrderTimeoutMs) * time.Millisecond
}
