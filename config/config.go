package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Variant names accepted by motion.variant.
const (
	VariantPhysical = "physical"
	VariantWiggle   = "wiggle"
	VariantStill    = "still"
)

// Variants lists the motion variants in menu order.
var Variants = []string{VariantPhysical, VariantWiggle, VariantStill}

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Logging  LoggingConfig  `yaml:"logging"`
	Motion   Motion         `yaml:"motion"`
	Quad     QuadConfig     `yaml:"quad"`
	Polyline PolylineConfig `yaml:"polyline"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Motion selects and tunes the motion model.
type Motion struct {
	Variant  string   `yaml:"variant"`
	Physical Physical `yaml:"physical"`
	Wiggle   Wiggle   `yaml:"wiggle"`
}

// Physical tunes the gravity/jump model. Velocities are in units per
// nominal frame; position advances by velocity*dt/TimeScale.
type Physical struct {
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Gravity   float64 `yaml:"gravity"`
	TimeScale float64 `yaml:"time_scale"`
	// FrameMillis is the nominal frame length used when ScaleGravityByDt
	// is set.
	FrameMillis      float64 `yaml:"frame_millis"`
	ScaleGravityByDt bool    `yaml:"scale_gravity_by_dt"`
}

// Wiggle tunes the procedural wander model.
type Wiggle struct {
	BaseSpeed  float64 `yaml:"base_speed"`
	TurboStep  float64 `yaml:"turbo_step"`
	FastFactor float64 `yaml:"fast_factor"`
	SlowFactor float64 `yaml:"slow_factor"`
	// Script optionally names a tengo file computing offset_x/offset_y from
	// time.
	Script string `yaml:"script"`
}

type QuadConfig struct {
	HalfSize float64 `yaml:"half_size"`
	Texture  string  `yaml:"texture"`
	Tint     string  `yaml:"tint"`
}

type PolylineConfig struct {
	Variants   []string     `yaml:"variants"`
	Width      float64      `yaml:"width"`
	Scale      float64      `yaml:"scale"`
	MiterLimit float64      `yaml:"miter_limit"`
	Color      string       `yaml:"color"`
	Points     [][2]float64 `yaml:"points"`
}

// ShownFor reports whether the polyline is drawn while variant is active.
func (p PolylineConfig) ShownFor(variant string) bool {
	return slices.Contains(p.Variants, variant)
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal default.yaml: %w", err)
	}
	return cfg, nil
}

// Load decodes the embedded defaults and then, if path is not empty, the
// file at path on top of them. Fields the file omits keep their defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
		if err := Decode(data, cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode decodes YAML data onto cfg. Lists in data replace the existing ones.
func Decode(data []byte, cfg *Config) error {
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the values the client cannot run without.
func (c *Config) Validate() error {
	if !slices.Contains(Variants, c.Motion.Variant) {
		return fmt.Errorf("%w: motion.variant: unknown variant %q", ErrInvalid, c.Motion.Variant)
	}
	if c.Motion.Physical.TimeScale <= 0 {
		return fmt.Errorf("%w: motion.physical.time_scale: must be positive", ErrInvalid)
	}
	if c.Motion.Physical.ScaleGravityByDt && c.Motion.Physical.FrameMillis <= 0 {
		return fmt.Errorf("%w: motion.physical.frame_millis: must be positive", ErrInvalid)
	}
	if c.Motion.Wiggle.FastFactor <= 0 || c.Motion.Wiggle.SlowFactor <= 0 {
		return fmt.Errorf("%w: motion.wiggle: time factors must be positive", ErrInvalid)
	}
	if c.Quad.HalfSize <= 0 {
		return fmt.Errorf("%w: quad.half_size: must be positive", ErrInvalid)
	}
	if _, ok := Color(c.Quad.Tint); !ok {
		return fmt.Errorf("%w: quad.tint: unknown color %q", ErrInvalid, c.Quad.Tint)
	}
	for _, v := range c.Polyline.Variants {
		if !slices.Contains(Variants, v) {
			return fmt.Errorf("%w: polyline.variants: unknown variant %q", ErrInvalid, v)
		}
	}
	if len(c.Polyline.Variants) > 0 {
		if len(c.Polyline.Points) < 3 {
			return fmt.Errorf("%w: polyline.points: need at least 3, got %d", ErrInvalid, len(c.Polyline.Points))
		}
		if c.Polyline.Width <= 0 {
			return fmt.Errorf("%w: polyline.width: must be positive", ErrInvalid)
		}
		if c.Polyline.Scale <= 0 {
			return fmt.Errorf("%w: polyline.scale: must be positive", ErrInvalid)
		}
		if _, ok := Color(c.Polyline.Color); !ok {
			return fmt.Errorf("%w: polyline.color: unknown color %q", ErrInvalid, c.Polyline.Color)
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level: unknown level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// Color resolves an SVG color name ("orange", "crimson", ...).
func Color(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	return c, ok
}
