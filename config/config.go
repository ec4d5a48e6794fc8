// Package config provides configuration loading and access for the toy.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Energy    EnergyConfig    `yaml:"energy"`
	Spillage  SpillageConfig  `yaml:"spillage"`
	Tone      ToneConfig      `yaml:"tone"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// GridConfig holds honeycomb lattice parameters.
type GridConfig struct {
	HexRadius float64 `yaml:"hex_radius"` // Hexagon circumradius in pixels
}

// EnergyConfig holds the per-cell charge/decay parameters.
// ActiveRate must exceed DecayRate so sustained activation always wins.
type EnergyConfig struct {
	ActiveRate float64 `yaml:"active_rate"` // Charge per second while active
	DecayRate  float64 `yaml:"decay_rate"`  // Drain per second while inactive
	Max        float64 `yaml:"max"`         // Energy ceiling (clamp)
}

// SpillageConfig holds the neighbor transfer parameters.
type SpillageConfig struct {
	IntervalSec float64 `yaml:"interval_sec"` // Seconds between spill passes
	Threshold   float64 `yaml:"threshold"`    // Minimum source energy to spill at all
	Amount      float64 `yaml:"amount"`       // Energy moved per transfer
	Probability float64 `yaml:"probability"`  // Per-neighbor chance per pass
}

// ToneConfig holds pitch palette and playback parameters.
type ToneConfig struct {
	BaseFreq    float64 `yaml:"base_freq"`    // Scale root in Hz
	DurationSec float64 `yaml:"duration_sec"` // Length of each triggered tone
}

// AudioConfig holds synthesis output parameters.
type AudioConfig struct {
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"` // Fixed attenuation on the mix bus
	AttackSec    float64 `yaml:"attack_sec"`    // Linear attack ramp length
	MaxVoices    int     `yaml:"max_voices"`    // Polyphony cap (oldest voice is stolen)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window size in sim seconds
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
