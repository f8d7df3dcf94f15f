package mesh

import (
	gomath "math"
	"testing"
)

func checkIndices(t *testing.T, name string, b *Buffers) {
	t.Helper()
	n := b.VertexCount()
	for i, idx := range b.Indices {
		if int(idx) >= n {
			t.Fatalf("%s: index[%d] = %d out of range (vertexCount %d)", name, i, idx, n)
		}
	}
	if len(b.Indices)%3 != 0 {
		t.Errorf("%s: index count %d is not a triangle list", name, len(b.Indices))
	}
	if len(b.Vertices)%b.Layout.Stride != 0 {
		t.Errorf("%s: %d floats is not a multiple of stride %d", name, len(b.Vertices), b.Layout.Stride)
	}
}

func TestCylinderCounts(t *testing.T) {
	for sectors := 3; sectors <= 40; sectors++ {
		for _, caps := range []int{1, 2, 3, 4, 12, 36} {
			b := Cylinder(0.5, 1.0, sectors, caps)

			wantVerts := 2*sectors + caps
			wantIdx := 6*sectors + 3*(caps-1) + 3
			if b.VertexCount() != wantVerts {
				t.Errorf("Cylinder(%d, %d) vertices = %d, want %d", sectors, caps, b.VertexCount(), wantVerts)
			}
			if b.IndexCount() != wantIdx {
				t.Errorf("Cylinder(%d, %d) indices = %d, want %d", sectors, caps, b.IndexCount(), wantIdx)
			}
			checkIndices(t, "cylinder", b)
		}
	}
}

func TestCylinderFourSectors(t *testing.T) {
	b := Cylinder(0.5, 1.0, 4, 4)

	if b.VertexCount() != 12 {
		t.Errorf("vertices = %d, want 12", b.VertexCount())
	}
	if b.IndexCount() != 36 {
		t.Errorf("indices = %d, want 36", b.IndexCount())
	}
	if b.Layout.Stride != 7 {
		t.Errorf("stride = %d, want 7", b.Layout.Stride)
	}
}

func TestCylinderRingGeometry(t *testing.T) {
	const radius, height = 0.5, 1.0
	b := Cylinder(radius, height, 8, 8)

	for i := 0; i < 8; i++ {
		bottom := b.Vertex(2 * i)
		top := b.Vertex(2*i + 1)

		if bottom[1] != -height/2 || top[1] != height/2 {
			t.Errorf("sector %d: y = (%v, %v), want (-0.5, 0.5)", i, bottom[1], top[1])
		}
		if bottom[0] != top[0] || bottom[2] != top[2] {
			t.Errorf("sector %d: top and bottom rings do not share the sector angle", i)
		}
		r := gomath.Hypot(float64(bottom[0]), float64(bottom[2]))
		if gomath.Abs(r-radius) > 1e-5 {
			t.Errorf("sector %d: radius = %v, want %v", i, r, radius)
		}
		if want := float32(i) / 8; bottom[3] != want {
			t.Errorf("sector %d: s = %v, want %v", i, bottom[3], want)
		}
		if bottom[4] != 0 || bottom[5] != 0 || bottom[6] != 1 {
			t.Errorf("sector %d: normal hint = %v, want (0, 0, 1)", i, bottom[4:])
		}
	}
}

func TestCylinderSeamCloses(t *testing.T) {
	const sectors = 6
	b := Cylinder(1, 1, sectors, 3)

	// Last sector's side triangles must wrap back to sector 0.
	last := b.Indices[6*(sectors-1) : 6*sectors]
	want := []uint16{10, 11, 0, 0, 11, 1}
	for i := range want {
		if last[i] != want[i] {
			t.Fatalf("seam triangles = %v, want %v", last, want)
		}
	}
}

func TestCylinderCapVertices(t *testing.T) {
	b := Cylinder(0.5, 1.0, 4, 6)
	for i := 8; i < b.VertexCount(); i++ {
		v := b.Vertex(i)
		if v[1] != -0.5 {
			t.Errorf("cap vertex %d: y = %v, want -0.5", i, v[1])
		}
		if v[3] != 0.5 {
			t.Errorf("cap vertex %d: s = %v, want 0.5", i, v[3])
		}
	}
}

func TestSphereCounts(t *testing.T) {
	for lat := 1; lat <= 24; lat++ {
		for lon := 1; lon <= 24; lon++ {
			b := Sphere(0.25, lat, lon)

			if want := (lat + 1) * (lon + 1); b.VertexCount() != want {
				t.Errorf("Sphere(%d, %d) vertices = %d, want %d", lat, lon, b.VertexCount(), want)
			}
			if want := 6 * lat * lon; b.IndexCount() != want {
				t.Errorf("Sphere(%d, %d) indices = %d, want %d", lat, lon, b.IndexCount(), want)
			}
			checkIndices(t, "sphere", b)
		}
	}
}

func TestSphereOnSurface(t *testing.T) {
	const radius = 0.25
	b := Sphere(radius, 12, 18)

	for i := 0; i < b.VertexCount(); i++ {
		v := b.Vertex(i)
		r := gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
		if gomath.Abs(r-radius) > 1e-5 {
			t.Fatalf("vertex %d at distance %v, want %v", i, r, radius)
		}
		if v[3] < 0 || v[3] > 1 || v[4] < 0 || v[4] > 1 {
			t.Fatalf("vertex %d uv (%v, %v) outside [0, 1]", i, v[3], v[4])
		}
	}
}

func TestSphereUVConvention(t *testing.T) {
	b := Sphere(1, 4, 4)

	// North pole row, first column: u = 1, v = 1.
	first := b.Vertex(0)
	if first[1] != 1 || first[3] != 1 || first[4] != 1 {
		t.Errorf("first vertex = %v, want y=1 u=1 v=1", first)
	}

	// South pole row, last column: u = 0, v = 0.
	last := b.Vertex(b.VertexCount() - 1)
	if last[3] != 0 || last[4] != 0 {
		t.Errorf("last vertex uv = (%v, %v), want (0, 0)", last[3], last[4])
	}
}

func TestPlane(t *testing.T) {
	a := Plane()
	b := Plane()

	if a.VertexCount() != 4 || a.IndexCount() != 6 {
		t.Fatalf("Plane() = %d vertices / %d indices, want 4 / 6", a.VertexCount(), a.IndexCount())
	}
	checkIndices(t, "plane", a)

	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("Plane() not deterministic at float %d", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("Plane() not deterministic at index %d", i)
		}
	}

	// Mutating one result must not leak into the next call.
	a.Vertices[0] = 42
	if Plane().Vertices[0] == 42 {
		t.Error("Plane() shares its backing array between calls")
	}

	for i := 0; i < a.VertexCount(); i++ {
		if y := Plane().Vertex(i)[1]; y != 0 {
			t.Errorf("plane vertex %d: y = %v, want 0", i, y)
		}
	}
}

func TestBounds(t *testing.T) {
	min, max := Cylinder(0.5, 1.0, 36, 36).Bounds()

	if gomath.Abs(float64(min[1]+0.5)) > 1e-6 || gomath.Abs(float64(max[1]-0.5)) > 1e-6 {
		t.Errorf("cylinder Y bounds = [%v, %v], want [-0.5, 0.5]", min[1], max[1])
	}
	if gomath.Abs(float64(max[0]-0.5)) > 1e-6 {
		t.Errorf("cylinder max X = %v, want 0.5", max[0])
	}
}
