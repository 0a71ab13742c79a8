// Package gpu owns OpenGL buffer objects.
//
// A VertexArray holds exactly one VAO and one VBO. The handles never leave the
// type; Delete releases both and leaves the value inert.
package gpu

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shapelab/pkg/mesh"
)

// ErrEmpty is returned when asked to upload zero vertices.
var ErrEmpty = errors.New("gpu: no vertex data")

// Primitive selects how vertices are assembled when drawn.
type Primitive uint32

const (
	Triangles Primitive = gl.TRIANGLES
	Lines     Primitive = gl.LINES
)

// VertexArray is a VAO with its backing VBO.
type VertexArray struct {
	vao       uint32
	vbo       uint32
	count     int32
	primitive Primitive
}

// NewVertexArray uploads data into a new VBO and configures a VAO from layout.
// The size of T must equal layout.Stride. Requires a current GL context.
func NewVertexArray[T any](data []T, layout mesh.Layout, primitive Primitive) (*VertexArray, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if size := unsafe.Sizeof(data[0]); size != layout.Stride {
		return nil, fmt.Errorf("gpu: vertex size %d does not match layout stride %d", size, layout.Stride)
	}

	va := &VertexArray{count: int32(len(data)), primitive: primitive}

	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(layout.Stride), unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	for _, attr := range layout.Attributes {
		typ, err := glType(attr.Type)
		if err != nil {
			gl.BindVertexArray(0)
			va.Delete()
			return nil, fmt.Errorf("attribute %s: %w", attr.Name, err)
		}
		gl.EnableVertexAttribArray(attr.Location)
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Components, typ, false, int32(layout.Stride), attr.Offset)
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return va, nil
}

// Count returns the number of vertices drawn.
func (va *VertexArray) Count() int32 {
	return va.count
}

// Draw issues one draw call for all vertices.
func (va *VertexArray) Draw() {
	if va.vao == 0 {
		return
	}
	gl.BindVertexArray(va.vao)
	gl.DrawArrays(uint32(va.primitive), 0, va.count)
	gl.BindVertexArray(0)
}

// Delete releases the VAO and VBO. Safe to call more than once.
func (va *VertexArray) Delete() {
	if va.vao != 0 {
		gl.DeleteVertexArrays(1, &va.vao)
		va.vao = 0
	}
	if va.vbo != 0 {
		gl.DeleteBuffers(1, &va.vbo)
		va.vbo = 0
	}
	va.count = 0
}

func glType(t mesh.ComponentType) (uint32, error) {
	switch t {
	case mesh.Float32:
		return gl.FLOAT, nil
	default:
		return 0, fmt.Errorf("unsupported component type %v", t)
	}
}
