package config

import "sort"

var Presets = map[string]*Config{
	"quick": {
		Tolerance: 0.05, MaxOrder: 10,
		Simulation: SimulationConfig{
			DurationDays: 100, Steps: 500, StarMass: 1, Integrator: "leapfrog",
		},
	},
	"long": {
		Tolerance: 0.05, MaxOrder: 10,
		Simulation: SimulationConfig{
			DurationDays: 3650, Steps: 20000, StarMass: 1, Integrator: "leapfrog",
		},
	},
	"chain": {
		Tolerance: 0.02, MaxOrder: 5,
		Simulation: SimulationConfig{
			DurationDays: 300, Steps: 3000, ResonantChain: true, StarMass: 1, Integrator: "leapfrog",
		},
	},
	"precise": {
		Tolerance: 0.01, MaxOrder: 10,
		Simulation: SimulationConfig{
			DurationDays: 300, Steps: 5000, StarMass: 1, Integrator: "rk4",
		},
	},
}

// GetPreset returns a copy of the named preset with the default catalog
// path, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Catalog = DefaultCatalog
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
