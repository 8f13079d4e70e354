// package config loads the workload settings for the memcmp binary.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pfcm/flo8/bench"
	"github.com/pfcm/flo8/mem"
)

// Config holds the workload parameters. Fields left out of the file keep
// their defaults.
type Config struct {
	Iterations int     `yaml:"iterations"`
	Elements   int     `yaml:"elements"`
	PowerWatts float64 `yaml:"power_watts"`
}

// Default returns the standard workload parameters.
func Default() Config {
	return Config{
		Iterations: bench.DefaultIterations,
		Elements:   bench.DefaultElements,
		PowerWatts: bench.DefaultPowerWatts,
	}
}

// Load reads a YAML Config from path and validates it.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every parameter is positive.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Elements <= 0 {
		return fmt.Errorf("elements must be positive, got %d", c.Elements)
	}
	if c.PowerWatts <= 0 {
		return fmt.Errorf("power_watts must be positive, got %g", c.PowerWatts)
	}
	return nil
}

// Runner builds a bench.Runner from the config, recording with t.
func (c Config) Runner(t *mem.Tracker) bench.Runner {
	return bench.Runner{
		Iterations: c.Iterations,
		Elements:   c.Elements,
		PowerWatts: c.PowerWatts,
		Tracker:    t,
	}
}
