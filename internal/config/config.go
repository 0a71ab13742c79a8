// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/shapelab/internal/engine/shading"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// Shape kinds understood by ShapeConfig.Build.
const (
	ShapeSphere = "sphere"
	ShapeCone   = "cone"
)

// ErrUnknownShape is returned for a shape kind other than sphere or cone.
var ErrUnknownShape = errors.New("unknown shape kind")

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Shape    ShapeConfig    `yaml:"shape"`
	View     ViewConfig     `yaml:"view"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	Wireframe     bool   `yaml:"wireframe"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	Shading       string `yaml:"shading"` // normals or texcoords
}

// ShapeConfig selects the tessellated shape and its subdivisions.
type ShapeConfig struct {
	Kind   string  `yaml:"kind"` // sphere or cone
	Radius float32 `yaml:"radius"`
	Height float32 `yaml:"height"` // cone only
	Slices int     `yaml:"slices"` // angular subdivisions
	Stacks int     `yaml:"stacks"` // latitude / height subdivisions
}

// ViewConfig holds camera and animation settings.
type ViewConfig struct {
	FOV       float32 `yaml:"fov"` // vertical, degrees
	Near      float32 `yaml:"near"`
	Far       float32 `yaml:"far"`
	Distance  float32 `yaml:"distance"`
	SpinSpeed float32 `yaml:"spin_speed"` // degrees per second around Y
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			Wireframe:     false,
			ScreenshotDir: "screenshots",
			Shading:       shading.Normals.String(),
		},
		Shape: ShapeConfig{
			Kind:   ShapeSphere,
			Radius: 1,
			Height: 2,
			Slices: 32,
			Stacks: 16,
		},
		View: ViewConfig{
			FOV:       70,
			Near:      0.1,
			Far:       100,
			Distance:  5,
			SpinSpeed: 20,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Build returns validated tessellation parameters for the configured shape.
func (s ShapeConfig) Build() (mesh.Shape, error) {
	switch s.Kind {
	case ShapeSphere:
		return mesh.NewSphere(s.Radius, s.Slices, s.Stacks)
	case ShapeCone:
		return mesh.NewCone(s.Height, s.Radius, s.Slices, s.Stacks)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.Kind)
	}
}

// Validate checks settings that would otherwise fail deep inside the renderer.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if _, err := shading.ParseMode(c.Graphics.Shading); err != nil {
		return fmt.Errorf("graphics: %w", err)
	}
	if _, err := c.Shape.Build(); err != nil {
		return fmt.Errorf("shape: %w", err)
	}
	if !(c.View.FOV > 0 && c.View.FOV < 180) {
		return fmt.Errorf("view: fov %v out of range (0, 180)", c.View.FOV)
	}
	if !(c.View.Near > 0 && c.View.Far > c.View.Near) {
		return fmt.Errorf("view: invalid clip planes near=%v far=%v", c.View.Near, c.View.Far)
	}
	if !(c.View.Distance > 0) {
		return fmt.Errorf("view: distance %v must be positive", c.View.Distance)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}
	return nil
}
