package mesh

import "unsafe"

// ComponentType is the scalar type of a vertex attribute component.
type ComponentType int

const (
	Float32 ComponentType = iota
)

// Size returns the component size in bytes.
func (t ComponentType) Size() uintptr {
	switch t {
	case Float32:
		return 4
	default:
		return 0
	}
}

func (t ComponentType) String() string {
	switch t {
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}

// Attribute describes one interleaved vertex attribute.
type Attribute struct {
	Name       string
	Location   uint32
	Offset     uintptr
	Components int32
	Type       ComponentType
}

// Size returns the attribute size in bytes.
func (a Attribute) Size() uintptr {
	return uintptr(a.Components) * a.Type.Size()
}

// Layout describes a packed vertex record.
type Layout struct {
	Stride     uintptr
	Attributes []Attribute
}

// FloatsPerVertex returns the number of float32 values in one record.
func (l Layout) FloatsPerVertex() int {
	return int(l.Stride / Float32.Size())
}

// Attribute looks up an attribute by name.
func (l Layout) Attribute(name string) (Attribute, bool) {
	for _, a := range l.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// VertexLayout is the GPU layout of ShapeVertex:
// position at 0, normal at 12, texCoords at 24, stride 32.
var VertexLayout = Layout{
	Stride: unsafe.Sizeof(ShapeVertex{}),
	Attributes: []Attribute{
		{Name: "position", Location: 0, Offset: unsafe.Offsetof(ShapeVertex{}.Position), Components: 3, Type: Float32},
		{Name: "normal", Location: 1, Offset: unsafe.Offsetof(ShapeVertex{}.Normal), Components: 3, Type: Float32},
		{Name: "texCoords", Location: 2, Offset: unsafe.Offsetof(ShapeVertex{}.TexCoords), Components: 2, Type: Float32},
	},
}

// Float32s flattens vertices into VertexLayout order, 8 floats per vertex.
func Float32s(vertices []ShapeVertex) []float32 {
	out := make([]float32, 0, len(vertices)*VertexLayout.FloatsPerVertex())
	for _, v := range vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Normal[:]...)
		out = append(out, v.TexCoords[:]...)
	}
	return out
}
