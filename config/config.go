// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/formicary/sim"
	"github.com/pthm-cable/formicary/simtime"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Ant       AntConfig       `yaml:"ant"`
	Colony    ColonyConfig    `yaml:"colony"`
	Worldgen  WorldgenConfig  `yaml:"worldgen"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading.
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig holds the simulated world's extent and tick cadence.
type GridConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	TickMS float64 `yaml:"tick_ms"`
}

// AntConfig holds ant sensing, planning, and scent tunables.
type AntConfig struct {
	VisionRadius       float64 `yaml:"vision_radius"`
	PheromonIntervalMS float64 `yaml:"pheromon_interval_ms"`
	CargoSize          float64 `yaml:"cargo_size"`
	EvaporationBase    float64 `yaml:"evaporation_base"`
}

// ColonyConfig holds colony ant-production tunables.
type ColonyConfig struct {
	InitialBudget  float64 `yaml:"initial_budget"`
	AntCost        float64 `yaml:"ant_cost"`
	RestIntervalMS float64 `yaml:"rest_interval_ms"`
	SpawnRadius    int     `yaml:"spawn_radius"`
}

// WorldgenConfig holds procedural scenario generation tunables.
type WorldgenConfig struct {
	Seed             int64   `yaml:"seed"`
	NoiseScale       float64 `yaml:"noise_scale"`
	ObstacleThreshold float64 `yaml:"obstacle_threshold"`
	FoodThreshold     float64 `yaml:"food_threshold"`
	FoodStock         float64 `yaml:"food_stock"`
}

// TelemetryConfig holds CSV export tunables.
type TelemetryConfig struct {
	SampleIntervalTicks int `yaml:"sample_interval_ticks"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	TickDelta float64          // Grid.TickMS in seconds
	AntCfg    sim.AntConfig    // sim.AntConfig built from Ant
	ColonyCfg sim.ColonyConfig // sim.ColonyConfig built from Colony
}

var global *Config

// Init loads configuration from path, or embedded defaults if path is
// empty. Must be called before Cfg().
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

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
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
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

func (c *Config) computeDerived() {
	c.Derived.TickDelta = c.Grid.TickMS / 1000
	c.Derived.AntCfg = sim.AntConfig{
		VisionRadius:     c.Ant.VisionRadius,
		PheromonInterval: simtime.MillisecondsToDuration(c.Ant.PheromonIntervalMS),
		CargoSize:        c.Ant.CargoSize,
		EvaporationBase:  c.Ant.EvaporationBase,
	}
	c.Derived.ColonyCfg = sim.ColonyConfig{
		AntCost:      c.Colony.AntCost,
		RestInterval: simtime.MillisecondsToDuration(c.Colony.RestIntervalMS),
		SpawnRadius:  c.Colony.SpawnRadius,
	}
}
