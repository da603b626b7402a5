package maritime

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Presets lists the environment presets shipped under config/.
var Presets = []string{"calm", "moderate", "rough"}

// Color is an RGB triple with components in [0, 1].
type Color [3]float64

// String renders the color the way SDF expects it, "r g b".
func (c Color) String() string {
	return fmt.Sprintf("%g %g %g", c[0], c[1], c[2])
}

// UnmarshalYAML accepts the [r, g, b] list form used by the preset files.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var parts []float64
	if err := value.Decode(&parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("color must have 3 components, got %d", len(parts))
	}
	copy(c[:], parts)
	return nil
}

// EnvConfig is the full env_<name>.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type EnvConfig struct {
	Environment EnvironmentConfig `yaml:"environment"`
	Ocean       OceanConfig       `yaml:"ocean"`
	Wind        WindConfig        `yaml:"wind"`
	Lighting    LightingConfig    `yaml:"lighting"`
	Visibility  VisibilityConfig  `yaml:"visibility"`
	Targets     TargetsConfig     `yaml:"targets"`
}

type EnvironmentConfig struct {
	Description string `yaml:"description"`
}

type OceanConfig struct {
	WaveHeight float64 `yaml:"wave_height"`
}

type WindConfig struct {
	SpeedMean float64 `yaml:"speed_mean"`
}

type LightingConfig struct {
	AmbientLight *Color  `yaml:"ambient_light"`
	SkyColor     *Color  `yaml:"sky_color"`
	SunIntensity float64 `yaml:"sun_intensity"`
}

type VisibilityConfig struct {
	FogEnabled     bool    `yaml:"fog_enabled"`
	FogDensity     float64 `yaml:"fog_density"`
	FogColor       *Color  `yaml:"fog_color"`
	RenderDistance float64 `yaml:"render_distance"`
}

type TargetsConfig struct {
	SpawnEnabled bool `yaml:"spawn_enabled"`
}

// Preset defaults applied for keys a preset file leaves out.
var (
	defaultAmbientLight = Color{0.4, 0.4, 0.4}
	defaultSkyColor     = Color{0.5, 0.7, 0.9}
	defaultFogColor     = Color{0.7, 0.7, 0.7}
)

const (
	defaultSunIntensity   = 0.8
	defaultWaveHeight     = 0.3
	defaultFogDensity     = 0.005
	defaultRenderDistance = 200
)

// applyDefaults fills in any field the preset file omitted.
func (c *EnvConfig) applyDefaults() {
	if c.Lighting.AmbientLight == nil {
		ambient := defaultAmbientLight
		c.Lighting.AmbientLight = &ambient
	}
	if c.Lighting.SkyColor == nil {
		sky := defaultSkyColor
		c.Lighting.SkyColor = &sky
	}
	if c.Lighting.SunIntensity == 0 {
		c.Lighting.SunIntensity = defaultSunIntensity
	}
	if c.Ocean.WaveHeight == 0 {
		c.Ocean.WaveHeight = defaultWaveHeight
	}
	if c.Visibility.FogDensity == 0 {
		c.Visibility.FogDensity = defaultFogDensity
	}
	if c.Visibility.FogColor == nil {
		fog := defaultFogColor
		c.Visibility.FogColor = &fog
	}
	if c.Visibility.RenderDistance == 0 {
		c.Visibility.RenderDistance = defaultRenderDistance
	}
}

// EnvConfigPath returns the preset file path for a named environment.
func EnvConfigPath(configDir, name string) string {
	return filepath.Join(configDir, fmt.Sprintf("env_%s.yaml", name))
}

// LoadEnvConfig reads and parses config/env_<name>.yaml with strict
// field checking, then applies defaults for omitted keys.
func LoadEnvConfig(configDir, name string) (*EnvConfig, error) {
	path := EnvConfigPath(configDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configuration %q not found at %s", name, path)
	}

	var cfg EnvConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}
