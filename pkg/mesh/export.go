package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Size returns the box extent on each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// ComputeBounds returns the bounding box of the vertex positions.
// An empty slice yields a zero box.
func ComputeBounds(vertices []ShapeVertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		for k := 0; k < 3; k++ {
			b.Min[k] = math32.Min(b.Min[k], v.Position[k])
			b.Max[k] = math32.Max(b.Max[k], v.Position[k])
		}
	}
	return b
}

// Stats summarizes a triangle list.
type Stats struct {
	Vertices       int
	Triangles      int
	Unique         int
	Bounds         Bounds
	MaxNormalError float32 // max |1 - |n||
}

// ComputeStats gathers Stats for a triangle list.
func ComputeStats(vertices []ShapeVertex) Stats {
	unique, _ := Index(vertices)
	s := Stats{
		Vertices:  len(vertices),
		Triangles: TriangleCount(vertices),
		Unique:    len(unique),
		Bounds:    ComputeBounds(vertices),
	}
	for _, v := range vertices {
		if e := math32.Abs(1 - v.Normal.Len()); e > s.MaxNormalError {
			s.MaxNormalError = e
		}
	}
	return s
}

// Index collapses bit-identical vertices and returns them with a triangle index list
// that reproduces the input order.
func Index(vertices []ShapeVertex) ([]ShapeVertex, []uint32) {
	seen := make(map[ShapeVertex]uint32, len(vertices)/4)
	unique := make([]ShapeVertex, 0, len(vertices)/4)
	indices := make([]uint32, 0, len(vertices))
	for _, v := range vertices {
		idx, ok := seen[v]
		if !ok {
			idx = uint32(len(unique))
			seen[v] = idx
			unique = append(unique, v)
		}
		indices = append(indices, idx)
	}
	return unique, indices
}

// WriteOBJ writes the triangle list as a Wavefront OBJ object.
func WriteOBJ(w io.Writer, name string, vertices []ShapeVertex) error {
	if len(vertices)%3 != 0 {
		return fmt.Errorf("vertex count %d is not a multiple of 3", len(vertices))
	}
	unique, indices := Index(vertices)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(unique), len(indices)/3)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range unique {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range unique {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoords[0], v.TexCoords[1])
	}
	for _, v := range unique {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for t := 0; t < len(indices); t += 3 {
		// OBJ indices are 1-based; position, uv and normal share one index.
		a, b, c := indices[t]+1, indices[t+1]+1, indices[t+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}

// WriteRaw writes the vertices as packed little-endian records in VertexLayout order.
func WriteRaw(w io.Writer, vertices []ShapeVertex) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, vertices); err != nil {
		return fmt.Errorf("encoding vertices: %w", err)
	}
	return bw.Flush()
}

// ReadRaw decodes records written by WriteRaw.
func ReadRaw(r io.Reader, count int) ([]ShapeVertex, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid vertex count %d", count)
	}
	vertices := make([]ShapeVertex, count)
	if err := binary.Read(r, binary.LittleEndian, vertices); err != nil {
		return nil, fmt.Errorf("decoding %d vertices: %w", count, err)
	}
	return vertices, nil
}
