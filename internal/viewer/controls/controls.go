// Package controls holds the viewer's keyboard-driven shape selection.
package controls

import (
	"fmt"

	"github.com/Faultbox/shapelab/internal/config"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// Subdivision steps applied by one Refine call, and the upper bounds.
const (
	SliceStep = 4
	StackStep = 2
	MaxSlices = 512
	MaxStacks = 256
)

// ShapeControl tracks the shape currently on screen and derives new parameter
// sets from key presses. Every returned shape is validated.
type ShapeControl struct {
	cfg   config.ShapeConfig
	shape mesh.Shape
}

// NewShapeControl validates the initial configuration.
func NewShapeControl(cfg config.ShapeConfig) (*ShapeControl, error) {
	shape, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ShapeControl{cfg: cfg, shape: shape}, nil
}

// Shape returns the current shape.
func (c *ShapeControl) Shape() mesh.Shape {
	return c.shape
}

// Config returns the current shape configuration.
func (c *ShapeControl) Config() config.ShapeConfig {
	return c.cfg
}

// Describe returns a one-line summary for window titles and logs.
func (c *ShapeControl) Describe() string {
	switch c.cfg.Kind {
	case config.ShapeCone:
		return fmt.Sprintf("cone h=%g r=%g %dx%d", c.cfg.Height, c.cfg.Radius, c.cfg.Slices, c.cfg.Stacks)
	default:
		return fmt.Sprintf("%s r=%g %dx%d", c.cfg.Kind, c.cfg.Radius, c.cfg.Slices, c.cfg.Stacks)
	}
}

// Toggle switches between sphere and cone, keeping radius and subdivisions.
func (c *ShapeControl) Toggle() (mesh.Shape, error) {
	next := c.cfg
	switch c.cfg.Kind {
	case config.ShapeSphere:
		next.Kind = config.ShapeCone
		if next.Height <= 0 {
			next.Height = 2 * next.Radius
		}
	default:
		next.Kind = config.ShapeSphere
		next.Stacks = max(next.Stacks, mesh.MinSphereStacks)
	}
	return c.apply(next)
}

// Refine adds steps subdivision increments (negative to coarsen), clamped to the
// valid range of the current shape. It reports whether anything changed.
func (c *ShapeControl) Refine(steps int) (mesh.Shape, bool) {
	minSlices, minStacks := mesh.MinSphereSlices, mesh.MinSphereStacks
	if c.cfg.Kind == config.ShapeCone {
		minSlices, minStacks = mesh.MinConeSlices, mesh.MinConeStacks
	}

	next := c.cfg
	next.Slices = clamp(next.Slices+steps*SliceStep, minSlices, MaxSlices)
	next.Stacks = clamp(next.Stacks+steps*StackStep, minStacks, MaxStacks)
	if next == c.cfg {
		return c.shape, false
	}

	shape, err := c.apply(next)
	if err != nil {
		return c.shape, false
	}
	return shape, true
}

func (c *ShapeControl) apply(next config.ShapeConfig) (mesh.Shape, error) {
	shape, err := next.Build()
	if err != nil {
		return nil, err
	}
	c.cfg = next
	c.shape = shape
	return shape, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
