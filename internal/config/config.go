// Package config provides the engine's balance constants, loaded from an
// embedded defaults file with optional per-deployment overrides.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable the engine reads. All values have sane
// embedded defaults; a zero Config is not usable.
type Config struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Trade    TradeConfig    `yaml:"trade"`
	Research ResearchConfig `yaml:"research"`
}

// PhysicsConfig tunes the per-frame tick pipeline.
type PhysicsConfig struct {
	HubbleConstant               float64 `yaml:"hubble_constant"`
	TimeScale                    float64 `yaml:"time_scale"`
	DecayRate                    float64 `yaml:"decay_rate"`
	EntropyRate                  float64 `yaml:"entropy_rate"`
	FluctuationThreshold         float64 `yaml:"fluctuation_threshold"`
	FluctuationVacuumBonus       float64 `yaml:"fluctuation_vacuum_bonus"`
	FluctuationEntanglementBonus float64 `yaml:"fluctuation_entanglement_bonus"`
	CurvatureFeedRate            float64 `yaml:"curvature_feed_rate"`
	RegenNeutrinos               float64 `yaml:"regen_neutrinos"`
	RegenGravitationalWaves      float64 `yaml:"regen_gravitational_waves"`
	RegenInformation             float64 `yaml:"regen_information"`
}

// TradeConfig tunes the scarcity/utility valuation.
type TradeConfig struct {
	MaxValueRatio     float64 `yaml:"max_value_ratio"`
	ScarcityNumerator float64 `yaml:"scarcity_numerator"`
	ScarcityOffset    float64 `yaml:"scarcity_offset"`
	ScarcityFloor     float64 `yaml:"scarcity_floor"`
}

// ResearchConfig tunes breakthrough thresholds.
type ResearchConfig struct {
	ThresholdBase           float64 `yaml:"threshold_base"`
	ThresholdPerRequirement float64 `yaml:"threshold_per_requirement"`
}

// Default returns the embedded configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		// The embedded file ships with the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load returns the defaults overlaid with values from the given YAML file.
// Fields absent from the override keep their embedded defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
