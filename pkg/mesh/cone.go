package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MinConeSlices and MinConeStacks are the smallest subdivisions that give a closed cone.
const (
	MinConeSlices = 3
	MinConeStacks = 1
)

// ConeParams describes an open cone whose base circle is centered at the origin in the
// XZ plane and whose apex sits at (0, Height, 0).
type ConeParams struct {
	Height float32
	Radius float32
	Slices int // angular subdivisions
	Stacks int // height subdivisions
}

// NewCone returns validated cone parameters.
func NewCone(height, radius float32, slices, stacks int) (ConeParams, error) {
	p := ConeParams{Height: height, Radius: radius, Slices: slices, Stacks: stacks}
	if err := p.Validate(); err != nil {
		return ConeParams{}, err
	}
	return p, nil
}

// Validate checks the tessellation preconditions.
func (p ConeParams) Validate() error {
	if !(p.Height > 0) || math32.IsInf(p.Height, 0) {
		return fmt.Errorf("%w: %v (must be > 0)", ErrInvalidHeight, p.Height)
	}
	if !(p.Radius >= 0) || math32.IsInf(p.Radius, 0) {
		return fmt.Errorf("%w: %v (must be >= 0)", ErrInvalidRadius, p.Radius)
	}
	if p.Slices < MinConeSlices {
		return fmt.Errorf("%w: %d (must be >= %d)", ErrInvalidSlices, p.Slices, MinConeSlices)
	}
	if p.Stacks < MinConeStacks {
		return fmt.Errorf("%w: %d (must be >= %d)", ErrInvalidStacks, p.Stacks, MinConeStacks)
	}
	return nil
}

// Name implements Shape.
func (p ConeParams) Name() string { return "cone" }

// Grid returns the (Stacks+1) x Slices sample grid, row-major by height band.
// Panics if the parameters are invalid.
func (p ConeParams) Grid() []ShapeVertex {
	p.mustValidate()

	slices, stacks := p.Slices, p.Stacks
	dPhi := 2 * math32.Pi / float32(slices)
	// Slope of the normal along Y. Constant for every band, which keeps the apex
	// normal well defined instead of collapsing to zero.
	ny := p.Radius / p.Height

	grid := make([]ShapeVertex, 0, (stacks+1)*slices)
	for j := 0; j <= stacks; j++ {
		v := float32(j) / float32(stacks)
		// (height - j*dH) / height
		shrink := 1 - v
		for i := 0; i < slices; i++ {
			phi := float32(i) * dPhi
			sin, cos := math32.Sin(phi), math32.Cos(phi)
			grid = append(grid, ShapeVertex{
				Position: mgl32.Vec3{
					p.Radius * shrink * sin,
					p.Height * v,
					p.Radius * shrink * cos,
				},
				Normal:    mgl32.Vec3{sin, ny, cos}.Normalize(),
				TexCoords: mgl32.Vec2{float32(i) / float32(slices), v},
			})
		}
	}
	return grid
}

// Vertices returns the cone as a triangle list of 6*Slices*Stacks vertices.
// Panics if the parameters are invalid.
func (p ConeParams) Vertices() []ShapeVertex {
	grid := p.Grid()
	lat := p.Slices

	out := make([]ShapeVertex, 0, 6*p.Slices*p.Stacks)
	for j := 0; j < p.Stacks; j++ {
		base := j * lat
		for i := 0; i < lat; i++ {
			next := (i + 1) % lat
			out = append(out,
				grid[base+i],
				grid[base+next],
				grid[base+lat+next],
				grid[base+i],
				grid[base+lat+next],
				grid[base+lat+i],
			)
		}
	}
	return out
}

// ConeVertices tessellates a cone of the given height and base radius.
// Panics with a wrapped validation error on invalid input.
func ConeVertices(height, radius float32, slices, stacks int) []ShapeVertex {
	return ConeParams{Height: height, Radius: radius, Slices: slices, Stacks: stacks}.Vertices()
}

func (p ConeParams) mustValidate() {
	if err := p.Validate(); err != nil {
		panic(err)
	}
}
