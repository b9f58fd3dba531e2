// Package config loads simulation scenario configuration from YAML and
// builds the configured container, space and scheduler. It is consumed by
// the agentsim CLI; library users wire these pieces directly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentsim/container"
	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/scheduler"
	"github.com/hupe1980/agentsim/space"
)

// SpaceConfig describes the optional space of a scenario.
type SpaceConfig struct {
	// Kind is "grid", "continuous" or empty for a non-spatial model.
	Kind string `yaml:"kind"`
	// Size is the per-dimension cell count of a grid space.
	Size []int `yaml:"size"`
	// Extent is the per-dimension length of a continuous space.
	Extent []float64 `yaml:"extent"`
	// Periodic selects wraparound topology. Defaults to true.
	Periodic *bool `yaml:"periodic"`
	// Metric is "chebyshev" (default), "manhattan" or "euclidean".
	Metric string `yaml:"metric"`
	// SingleOccupancy restricts grid cells to one agent.
	SingleOccupancy bool `yaml:"single_occupancy"`
}

// Config describes one simulation scenario.
type Config struct {
	// Steps is the number of simulation steps to run.
	Steps int `yaml:"steps"`
	// Seed seeds the model-scoped random source.
	Seed int64 `yaml:"seed"`
	// Agents is the initial population size.
	Agents int `yaml:"agents"`
	// Container is "dict" (default) or "vector".
	Container string `yaml:"container"`
	// Scheduler is "fastest" (default), "by_id", "random" or "partial".
	Scheduler string `yaml:"scheduler"`
	// Fraction is the sampled fraction for the partial scheduler.
	Fraction float64 `yaml:"fraction"`
	// Space configures the optional space.
	Space SpaceConfig `yaml:"space"`
}

// Default returns the baseline scenario configuration.
func Default() *Config {
	return &Config{
		Steps:     100,
		Agents:    100,
		Container: "dict",
		Scheduler: "fastest",
		Space: SpaceConfig{
			Kind: "grid",
			Size: []int{20, 20},
		},
	}
}

// Load reads and validates a scenario file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	if c.Agents < 0 {
		return fmt.Errorf("agents must not be negative, got %d", c.Agents)
	}

	switch c.Container {
	case "dict", "vector":
	default:
		return fmt.Errorf("unknown container %q", c.Container)
	}

	switch c.Scheduler {
	case "fastest", "by_id", "random":
	case "partial":
		if c.Fraction <= 0 || c.Fraction > 1 {
			return fmt.Errorf("partial scheduler needs a fraction in (0, 1], got %v", c.Fraction)
		}
	default:
		return fmt.Errorf("unknown scheduler %q", c.Scheduler)
	}

	switch c.Space.Kind {
	case "":
	case "grid":
		if len(c.Space.Size) == 0 {
			return fmt.Errorf("grid space needs a size")
		}
		for _, s := range c.Space.Size {
			if s < 1 {
				return fmt.Errorf("grid dimensions must be positive, got %v", c.Space.Size)
			}
		}
		switch c.Space.Metric {
		case "", "chebyshev", "manhattan", "euclidean":
		default:
			return fmt.Errorf("unknown metric %q", c.Space.Metric)
		}
	case "continuous":
		if len(c.Space.Extent) == 0 {
			return fmt.Errorf("continuous space needs an extent")
		}
		for _, e := range c.Space.Extent {
			if e <= 0 {
				return fmt.Errorf("extent must be positive, got %v", c.Space.Extent)
			}
		}
	default:
		return fmt.Errorf("unknown space kind %q", c.Space.Kind)
	}

	return nil
}

// BuildContainer constructs the configured container.
func (c *Config) BuildContainer() core.Container {
	if c.Container == "vector" {
		return container.NewVector()
	}
	return container.NewDict()
}

// BuildScheduler constructs the configured scheduling policy.
func (c *Config) BuildScheduler() core.Scheduler {
	switch c.Scheduler {
	case "by_id":
		return scheduler.ByID()
	case "random":
		return scheduler.Randomly()
	case "partial":
		return scheduler.Partially(c.Fraction)
	default:
		return scheduler.Fastest()
	}
}

// BuildSpace constructs the configured space, or nil for non-spatial
// scenarios.
func (c *Config) BuildSpace() core.Space {
	periodic := true
	if c.Space.Periodic != nil {
		periodic = *c.Space.Periodic
	}

	switch c.Space.Kind {
	case "grid":
		metric := core.Chebyshev
		switch c.Space.Metric {
		case "manhattan":
			metric = core.Manhattan
		case "euclidean":
			metric = core.Euclidean
		}
		return space.NewGrid(core.GridPos(c.Space.Size), func(o *space.GridOptions) {
			o.Periodic = periodic
			o.Metric = metric
			o.SingleOccupancy = c.Space.SingleOccupancy
		})
	case "continuous":
		return space.NewContinuous(core.Point(c.Space.Extent), func(o *space.ContinuousOptions) {
			o.Periodic = periodic
		})
	default:
		return nil
	}
}
