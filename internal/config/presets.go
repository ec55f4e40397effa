package config

import (
	"sort"

	"github.com/coresim/pwrsim/internal/core"
)

// Presets are curated run variants per scenario. Parameter overrides are
// expressed as functions so every preset starts from the validated
// default pack.
var presets = map[string]map[string]func() *Config{
	"steady-hold": {
		"long": func() *Config {
			c := DefaultConfig()
			c.Duration = 600
			return c
		},
		"euler": func() *Config {
			c := DefaultConfig()
			c.Integrator = string(core.MethodEuler)
			c.Dt = 0.01
			c.RecordEvery = 100
			return c
		},
	},
	"scram": {
		"baseline": func() *Config {
			c := DefaultConfig()
			c.Scenario = "scram"
			return c
		},
		"slow-insertion": func() *Config {
			c := DefaultConfig()
			c.Scenario = "scram"
			c.Params.ScramTau = 2.5
			return c
		},
		"xenon-accelerated": func() *Config {
			c := DefaultConfig()
			c.Scenario = "scram"
			c.Duration = 600
			c.RecordEvery = 100
			// One simulated second covers six minutes of poison chain.
			c.Params.XenonSpeedup = 360
			return c
		},
	},
	"startup": {
		"gentle": func() *Config {
			c := DefaultConfig()
			c.Scenario = "startup"
			c.Duration = 120
			c.RecordEvery = 40
			return c
		},
	},
	"pump-trip": {
		"natural-circulation": func() *Config {
			c := DefaultConfig()
			c.Scenario = "pump-trip"
			c.Duration = 120
			c.RecordEvery = 40
			return c
		},
	},
}

// GetPreset returns a fresh config for the named preset, or nil when the
// scenario or preset is unknown.
func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := presets[scenario]
	if !ok {
		return nil
	}
	build, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	cfg := build()
	cfg.Scenario = scenario
	return cfg
}

// ListPresets names the presets available for a scenario.
func ListPresets(scenario string) []string {
	scenarioPresets, ok := presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
