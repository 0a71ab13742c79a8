package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/shapelab/pkg/mesh"
)

func TestBoundsLines(t *testing.T) {
	b := mesh.Bounds{Min: mgl32.Vec3{-1, 0, -1}, Max: mgl32.Vec3{1, 2, 1}}
	lines := BoundsLines(b, 0.5)

	if len(lines) != BBoxWireframeVertexCount {
		t.Fatalf("expected %d vertices, got %d", BBoxWireframeVertexCount, len(lines))
	}

	for i := 0; i < len(lines); i += 2 {
		a, c := lines[i].Position, lines[i+1].Position
		// Every edge is axis aligned: exactly one coordinate changes.
		changed := 0
		for k := 0; k < 3; k++ {
			if a[k] != c[k] {
				changed++
			}
		}
		if changed != 1 {
			t.Errorf("edge %d from %v to %v is not axis aligned", i/2, a, c)
		}
		for _, p := range []mgl32.Vec3{a, c} {
			for k, want := range [][2]float32{{-1.5, 1.5}, {-0.5, 2.5}, {-1.5, 1.5}} {
				if p[k] != want[0] && p[k] != want[1] {
					t.Errorf("corner %v axis %d not on padded box", p, k)
				}
			}
		}
	}
}

func TestNormalLines(t *testing.T) {
	vs := mesh.SphereVertices(2, 6, 3)
	unique, _ := mesh.Index(vs)

	lines := NormalLines(vs, 0.25)
	if len(lines) != 2*len(unique) {
		t.Fatalf("expected %d vertices, got %d", 2*len(unique), len(lines))
	}
	for i := 0; i < len(lines); i += 2 {
		start, end := lines[i].Position, lines[i+1].Position
		if d := end.Sub(start).Len(); d < 0.2499 || d > 0.2501 {
			t.Errorf("segment %d has length %v, want 0.25", i/2, d)
		}
		// Sphere normals point away from the center.
		if end.Len() <= start.Len() {
			t.Errorf("segment %d points inward", i/2)
		}
	}
}

func TestLineLayout(t *testing.T) {
	if LineLayout.Stride != 12 {
		t.Errorf("expected stride 12, got %d", LineLayout.Stride)
	}
}
