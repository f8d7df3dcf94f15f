package mesh

// planeVertices is a unit quad in the XZ plane: position (3) + texcoord (2).
var planeVertices = [...]float32{
	-0.5, 0.0, -0.5, 0.0, 0.0,
	0.5, 0.0, -0.5, 1.0, 0.0,
	-0.5, 0.0, 0.5, 0.0, 1.0,
	0.5, 0.0, 0.5, 1.0, 1.0,
}

var planeIndices = [...]uint16{
	0, 1, 2,
	2, 1, 3,
}

// Plane returns the ground quad. Every call returns a fresh copy.
func Plane() *Buffers {
	b := newBuilder(LayoutPosTex, 4, 6)
	b.vertex(planeVertices[:]...)
	b.buf.Indices = append(b.buf.Indices, planeIndices[:]...)
	return b.buf
}
