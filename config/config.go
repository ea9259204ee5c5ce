package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/block-walker/constant"
	"github.com/lixenwraith/block-walker/input"
)

// Terrain source selectors
const (
	SourceSine   = "sine"
	SourcePerlin = "perlin"
)

// Config is the root application configuration. Every field has a
// working default; a missing file or empty path runs the defaults.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
}

type TerrainConfig struct {
	// Source selects the height function: "sine" or "perlin"
	Source string `yaml:"source"`
	// Seed only affects the perlin source
	Seed int64 `yaml:"seed"`
}

type InputConfig struct {
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	StickSensitivity float64 `yaml:"stick_sensitivity"`
	StickDeadZone    float64 `yaml:"stick_dead_zone"`
	GamepadDevice    string  `yaml:"gamepad_device"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Source: SourceSine,
			Seed:   1,
		},
		Input: InputConfig{
			MouseSensitivity: constant.MouseSensitivity,
			StickSensitivity: constant.StickSensitivity,
			StickDeadZone:    constant.StickDeadZone,
			GamepadDevice:    deviceWithEnvFallback("", "BLOCKWALKER_JOYSTICK", "/dev/input/js0"),
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// deviceWithEnvFallback resolves with priority: config -> env -> default
func deviceWithEnvFallback(configured, envVar, fallback string) string {
	if configured != "" {
		return configured
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return fallback
}

// Load reads the YAML configuration on top of the defaults.
// An empty path falls back to the BLOCKWALKER_CONFIG environment
// variable, and if that is unset too the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("BLOCKWALKER_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Terrain.Source != SourceSine && cfg.Terrain.Source != SourcePerlin {
		return nil, fmt.Errorf("unknown terrain source %q", cfg.Terrain.Source)
	}
	cfg.Input.GamepadDevice = deviceWithEnvFallback(cfg.Input.GamepadDevice, "BLOCKWALKER_JOYSTICK", "/dev/input/js0")
	return cfg, nil
}

// Settings maps the input section onto aggregator settings.
func (c *InputConfig) Settings() input.Settings {
	s := input.DefaultSettings()
	if c.MouseSensitivity > 0 {
		s.MouseSensitivity = c.MouseSensitivity
	}
	if c.StickSensitivity > 0 {
		s.StickSensitivity = c.StickSensitivity
	}
	if c.StickDeadZone > 0 {
		s.StickDeadZone = c.StickDeadZone
	}
	return s
}
