package debug

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/shapelab/pkg/mesh"
)

// LineVertex is a position-only vertex for GL_LINES overlays.
type LineVertex struct {
	Position mgl32.Vec3
}

// LineLayout is the GPU layout of LineVertex.
var LineLayout = mesh.Layout{
	Stride: unsafe.Sizeof(LineVertex{}),
	Attributes: []mesh.Attribute{
		{Name: "position", Location: 0, Offset: unsafe.Offsetof(LineVertex{}.Position), Components: 3, Type: mesh.Float32},
	},
}

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// BoundsLines creates line vertices for a wireframe box around b, grown by padding on every side.
func BoundsLines(b mesh.Bounds, padding float32) []LineVertex {
	pad := mgl32.Vec3{padding, padding, padding}
	lo, hi := b.Min.Sub(pad), b.Max.Add(pad)

	corner := func(x, y, z bool) LineVertex {
		p := lo
		if x {
			p[0] = hi[0]
		}
		if y {
			p[1] = hi[1]
		}
		if z {
			p[2] = hi[2]
		}
		return LineVertex{Position: p}
	}

	lines := make([]LineVertex, 0, BBoxWireframeVertexCount)
	for _, y := range []bool{false, true} {
		// Bottom and top faces
		lines = append(lines,
			corner(false, y, false), corner(true, y, false),
			corner(true, y, false), corner(true, y, true),
			corner(true, y, true), corner(false, y, true),
			corner(false, y, true), corner(false, y, false),
		)
	}
	// Vertical edges
	for _, xz := range [][2]bool{{false, false}, {true, false}, {true, true}, {false, true}} {
		lines = append(lines, corner(xz[0], false, xz[1]), corner(xz[0], true, xz[1]))
	}
	return lines
}

// NormalLines creates one segment per distinct vertex, from its position along its normal.
func NormalLines(vertices []mesh.ShapeVertex, length float32) []LineVertex {
	unique, _ := mesh.Index(vertices)
	lines := make([]LineVertex, 0, 2*len(unique))
	for _, v := range unique {
		lines = append(lines,
			LineVertex{Position: v.Position},
			LineVertex{Position: v.Position.Add(v.Normal.Mul(length))},
		)
	}
	return lines
}
