// Package mesh builds the procedural meshes drawn by the viewer.
// Generators are pure: they return CPU-side buffers and never touch the GPU.
package mesh

// MaxVertices is the largest vertex count addressable by 16-bit indices.
const MaxVertices = 1 << 16

// Attribute describes one vertex attribute inside an interleaved buffer.
// Size and Offset are counted in floats.
type Attribute struct {
	Location uint32
	Size     int32
	Offset   int
}

// Layout is the stride/offset contract between a generator and the shader.
type Layout struct {
	Stride     int // floats per vertex
	Attributes []Attribute
}

// Standard layouts.
var (
	// LayoutPosTex is position (3) + texcoord (2).
	LayoutPosTex = Layout{
		Stride: 5,
		Attributes: []Attribute{
			{Location: 0, Size: 3, Offset: 0},
			{Location: 1, Size: 2, Offset: 3},
		},
	}

	// LayoutPosTexNormal is position (3) + combined texcoord/normal hint (4).
	LayoutPosTexNormal = Layout{
		Stride: 7,
		Attributes: []Attribute{
			{Location: 0, Size: 3, Offset: 0},
			{Location: 1, Size: 4, Offset: 3},
		},
	}
)

// Buffers holds interleaved vertex data and a triangle list ready for upload.
// Treat as immutable once returned by a generator.
type Buffers struct {
	Vertices []float32
	Indices  []uint16
	Layout   Layout
}

// VertexCount returns the number of vertices.
func (b *Buffers) VertexCount() int {
	if b.Layout.Stride == 0 {
		return 0
	}
	return len(b.Vertices) / b.Layout.Stride
}

// IndexCount returns the number of indices.
func (b *Buffers) IndexCount() int {
	return len(b.Indices)
}

// Vertex returns the floats of vertex i.
func (b *Buffers) Vertex(i int) []float32 {
	s := b.Layout.Stride
	return b.Vertices[i*s : (i+1)*s]
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
func (b *Buffers) Bounds() (min, max [3]float32) {
	min = [3]float32{1e10, 1e10, 1e10}
	max = [3]float32{-1e10, -1e10, -1e10}
	for i := 0; i < b.VertexCount(); i++ {
		v := b.Vertex(i)
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max
}

// builder accumulates vertices and indices for a generator.
type builder struct {
	buf *Buffers
}

func newBuilder(layout Layout, vertices, indices int) *builder {
	return &builder{buf: &Buffers{
		Vertices: make([]float32, 0, vertices*layout.Stride),
		Indices:  make([]uint16, 0, indices),
		Layout:   layout,
	}}
}

func (b *builder) vertex(fields ...float32) {
	b.buf.Vertices = append(b.buf.Vertices, fields...)
}

func (b *builder) triangle(i0, i1, i2 int) {
	b.buf.Indices = append(b.buf.Indices, uint16(i0), uint16(i1), uint16(i2))
}
