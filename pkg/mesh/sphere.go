package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// A sphere needs at least two latitude bands to enclose any volume.
const (
	MinSphereSlices = 3
	MinSphereStacks = 2
)

// SphereParams describes a UV sphere centered at the origin with its poles on the Y axis.
type SphereParams struct {
	Radius float32
	Slices int // longitude subdivisions
	Stacks int // latitude subdivisions
}

// NewSphere returns validated sphere parameters.
func NewSphere(radius float32, slices, stacks int) (SphereParams, error) {
	p := SphereParams{Radius: radius, Slices: slices, Stacks: stacks}
	if err := p.Validate(); err != nil {
		return SphereParams{}, err
	}
	return p, nil
}

// Validate checks the tessellation preconditions.
func (p SphereParams) Validate() error {
	if !(p.Radius > 0) || math32.IsInf(p.Radius, 0) {
		return fmt.Errorf("%w: %v (must be > 0)", ErrInvalidRadius, p.Radius)
	}
	if p.Slices < MinSphereSlices {
		return fmt.Errorf("%w: %d (must be >= %d)", ErrInvalidSlices, p.Slices, MinSphereSlices)
	}
	if p.Stacks < MinSphereStacks {
		return fmt.Errorf("%w: %d (must be >= %d)", ErrInvalidStacks, p.Stacks, MinSphereStacks)
	}
	return nil
}

// Name implements Shape.
func (p SphereParams) Name() string { return "sphere" }

// Grid returns the (Stacks+1) x (Slices+1) sample grid from the south pole up.
// The seam column is duplicated so texture u reaches 1 without wrapping.
// Panics if the parameters are invalid.
func (p SphereParams) Grid() []ShapeVertex {
	if err := p.Validate(); err != nil {
		panic(err)
	}

	slices, stacks := p.Slices, p.Stacks
	dPhi := 2 * math32.Pi / float32(slices)
	dTheta := math32.Pi / float32(stacks)

	grid := make([]ShapeVertex, 0, (stacks+1)*(slices+1))
	for j := 0; j <= stacks; j++ {
		theta := -math32.Pi/2 + float32(j)*dTheta
		sinTheta, cosTheta := math32.Sin(theta), math32.Cos(theta)
		for i := 0; i <= slices; i++ {
			phi := float32(i) * dPhi
			n := mgl32.Vec3{
				math32.Sin(phi) * cosTheta,
				sinTheta,
				math32.Cos(phi) * cosTheta,
			}.Normalize()
			grid = append(grid, ShapeVertex{
				Position: n.Mul(p.Radius),
				Normal:   n,
				// v runs 1 at the south pole to 0 at the north pole; texture row 0 is the top.
				TexCoords: mgl32.Vec2{float32(i) / float32(slices), 1 - float32(j)/float32(stacks)},
			})
		}
	}
	return grid
}

// Vertices returns the sphere as a triangle list of 6*Slices*Stacks vertices.
// Panics if the parameters are invalid.
func (p SphereParams) Vertices() []ShapeVertex {
	grid := p.Grid()
	row := p.Slices + 1

	out := make([]ShapeVertex, 0, 6*p.Slices*p.Stacks)
	for j := 0; j < p.Stacks; j++ {
		base := j * row
		for i := 0; i < p.Slices; i++ {
			out = append(out,
				grid[base+i],
				grid[base+i+1],
				grid[base+row+i+1],
				grid[base+i],
				grid[base+row+i+1],
				grid[base+row+i],
			)
		}
	}
	return out
}

// SphereVertices tessellates a sphere of the given radius.
// Panics with a wrapped validation error on invalid input.
func SphereVertices(radius float32, slices, stacks int) []ShapeVertex {
	return SphereParams{Radius: radius, Slices: slices, Stacks: stacks}.Vertices()
}
