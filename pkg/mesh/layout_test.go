package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, uintptr(32), VertexLayout.Stride)
	assert.Equal(t, 8, VertexLayout.FloatsPerVertex())

	want := []struct {
		name       string
		location   uint32
		offset     uintptr
		components int32
	}{
		{"position", 0, 0, 3},
		{"normal", 1, 12, 3},
		{"texCoords", 2, 24, 2},
	}
	require.Len(t, VertexLayout.Attributes, len(want))

	var end uintptr
	for k, w := range want {
		a := VertexLayout.Attributes[k]
		assert.Equal(t, w.name, a.Name)
		assert.Equal(t, w.location, a.Location)
		assert.Equal(t, w.offset, a.Offset)
		assert.Equal(t, w.components, a.Components)
		assert.Equal(t, Float32, a.Type)
		end = a.Offset + a.Size()
	}
	assert.Equal(t, VertexLayout.Stride, end, "attributes must tile the record without padding")
}

func TestLayoutAttributeLookup(t *testing.T) {
	a, ok := VertexLayout.Attribute("normal")
	require.True(t, ok)
	assert.Equal(t, uintptr(12), a.Offset)

	_, ok = VertexLayout.Attribute("color")
	assert.False(t, ok)
}

func TestFloat32s(t *testing.T) {
	vs := []ShapeVertex{
		{Position: mgl32.Vec3{1, 2, 3}, Normal: mgl32.Vec3{4, 5, 6}, TexCoords: mgl32.Vec2{7, 8}},
		{Position: mgl32.Vec3{9, 10, 11}, Normal: mgl32.Vec3{12, 13, 14}, TexCoords: mgl32.Vec2{15, 16}},
	}
	got := Float32s(vs)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, got)
}

func TestComponentType(t *testing.T) {
	assert.Equal(t, uintptr(4), Float32.Size())
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "unknown", ComponentType(99).String())
}
