// Package config loads and saves run configurations. A file carries the
// scenario selection, the numerical settings, and optionally a full
// parameter-pack override; unspecified fields keep their defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coresim/pwrsim/internal/core"
)

const (
	DefaultDt          = 0.05
	DefaultDuration    = 60.0
	DefaultRecordEvery = 20
)

// Config is one run definition.
type Config struct {
	Scenario    string      `yaml:"scenario"`
	Integrator  string      `yaml:"integrator"`
	Dt          float64     `yaml:"dt"`
	Duration    float64     `yaml:"duration"`
	RecordEvery int         `yaml:"record_every"`
	WarnOnClamp bool        `yaml:"warn_on_clamp"`
	Params      core.Params `yaml:"params"`
}

// DefaultConfig returns the baseline run: the steady-hold scenario under
// RK4 with the reference parameter pack.
func DefaultConfig() *Config {
	return &Config{
		Scenario:    "steady-hold",
		Integrator:  string(core.MethodRK4),
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		RecordEvery: DefaultRecordEvery,
		Params:      core.Default(),
	}
}

// Load reads a config file over the defaults, so partial files are valid.
// The resulting parameter pack is validated before use.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SimConfig converts the run definition into the kernel's configuration.
func (c *Config) SimConfig(sink core.WarnSink) core.SimConfig {
	return core.SimConfig{
		Method:      core.Method(c.Integrator),
		WarnOnClamp: c.WarnOnClamp,
		Warn:        sink,
	}
}
