package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/resonancex/internal/dynamo"
	"github.com/san-kum/resonancex/internal/integrators"
	"github.com/san-kum/resonancex/internal/orbits"
	"github.com/san-kum/resonancex/internal/resonance"
	"github.com/san-kum/resonancex/internal/units"
)

const (
	DefaultDurationDays = 300.0
	DefaultSteps        = 1000
	DefaultCatalog      = "datasets/nasa_exoplanets.csv"
)

type Config struct {
	Tolerance  float64          `yaml:"tolerance"`
	MaxOrder   int              `yaml:"max_order"`
	Simulation SimulationConfig `yaml:"simulation"`
	Catalog    string           `yaml:"catalog"`
}

type SimulationConfig struct {
	DurationDays  float64 `yaml:"duration_days"`
	Steps         int     `yaml:"steps"`
	ResonantChain bool    `yaml:"resonant_chain"`
	StarMass      float64 `yaml:"star_mass"`
	Integrator    string  `yaml:"integrator"`
}

func DefaultConfig() *Config {
	return &Config{
		Tolerance: resonance.DefaultTolerance,
		MaxOrder:  resonance.DefaultMaxOrder,
		Simulation: SimulationConfig{
			DurationDays: DefaultDurationDays,
			Steps:        DefaultSteps,
			StarMass:     units.ReferenceStarMass,
			Integrator:   orbits.DefaultIntegrator,
		},
		Catalog: DefaultCatalog,
	}
}

// Load reads a YAML file over the defaults, so absent keys keep their
// default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if !(c.Tolerance > 0 && c.Tolerance < 1) {
		return dynamo.Invalid("tolerance must be in (0,1), got %g", c.Tolerance)
	}
	if c.MaxOrder < 1 {
		return dynamo.Invalid("max_order must be positive, got %d", c.MaxOrder)
	}
	s := c.Simulation
	if !units.Positive(s.DurationDays) {
		return dynamo.Invalid("simulation.duration_days must be positive, got %g", s.DurationDays)
	}
	if s.Steps <= 0 {
		return dynamo.Invalid("simulation.steps must be positive, got %d", s.Steps)
	}
	if !units.Positive(s.StarMass) {
		return dynamo.Invalid("simulation.star_mass must be positive, got %g", s.StarMass)
	}
	if !integrators.Known(s.Integrator) {
		return dynamo.Invalid("unknown integrator: %s (available: %v)", s.Integrator, integrators.Names())
	}
	return nil
}

func (c *Config) Detector() resonance.Detector {
	return resonance.Detector{Tolerance: c.Tolerance, MaxOrder: c.MaxOrder}
}

// Params builds simulation parameters for the given planets.
func (c *Config) Params(periods, masses []float64) orbits.Params {
	return orbits.Params{
		Periods:       periods,
		Masses:        masses,
		DurationDays:  c.Simulation.DurationDays,
		Steps:         c.Simulation.Steps,
		ResonantChain: c.Simulation.ResonantChain,
		StarMass:      c.Simulation.StarMass,
		Tolerance:     c.Tolerance,
		MaxOrder:      c.MaxOrder,
		Integrator:    c.Simulation.Integrator,
	}
}
