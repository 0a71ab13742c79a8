// Package mesh tessellates parametric surfaces into GPU-ready triangle lists.
//
// Every generator returns a flat []ShapeVertex where each consecutive triple is one
// triangle wound counter-clockwise when seen from outside the surface. No index buffer
// is produced: vertices shared between triangles are duplicated.
package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeVertex is one vertex of a tessellated shape.
// The field set and order define the GPU layout (see VertexLayout).
type ShapeVertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
}

// Shape is a validated parameter set that can be tessellated.
type Shape interface {
	// Name returns a short identifier such as "cone" or "sphere".
	Name() string
	// Grid returns the sampled surface points before triangle expansion.
	Grid() []ShapeVertex
	// Vertices returns the triangle list.
	Vertices() []ShapeVertex
}

// Parameter validation errors.
var (
	ErrInvalidHeight = errors.New("mesh: invalid height")
	ErrInvalidRadius = errors.New("mesh: invalid radius")
	ErrInvalidSlices = errors.New("mesh: invalid angular subdivisions")
	ErrInvalidStacks = errors.New("mesh: invalid height subdivisions")
)

// TriangleCount returns the number of triangles in a triangle list.
func TriangleCount(vertices []ShapeVertex) int {
	return len(vertices) / 3
}
