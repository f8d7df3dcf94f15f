package mesh

import (
	"github.com/Faultbox/sceneview/pkg/math"
)

// Cylinder builds an open-topped cylinder centered on the origin along Y,
// with a bottom cap.
//
// The side is two rings of sectorCount vertices (bottom, top) interleaved as
// 2i, 2i+1. The cap is a separate ring of capSegmentCount vertices at the
// bottom, triangulated as a fan around its first vertex.
//
// Each vertex is 7 floats: position, then s (around the ring; 0.5 on the cap)
// and a constant (0, 0, 1) normal hint. The shader derives lit normals from
// the model matrix, so the hint is not a true surface normal.
func Cylinder(radius, height float32, sectorCount, capSegmentCount int) *Buffers {
	ringVerts := 2 * sectorCount
	b := newBuilder(LayoutPosTexNormal,
		ringVerts+capSegmentCount,
		6*sectorCount+3*(capSegmentCount-1)+3)

	bottom := -height / 2
	top := bottom + height

	sectorStep := 2 * math.Pi / float32(sectorCount)
	for i := 0; i < sectorCount; i++ {
		angle := float32(i) * sectorStep
		x := radius * math.Cos(angle)
		z := radius * math.Sin(angle)
		s := float32(i) / float32(sectorCount)

		b.vertex(x, bottom, z, s, 0, 0, 1)
		b.vertex(x, top, z, s, 0, 0, 1)
	}

	capStep := 2 * math.Pi / float32(capSegmentCount)
	for i := 0; i < capSegmentCount; i++ {
		angle := float32(i) * capStep
		b.vertex(radius*math.Cos(angle), bottom, radius*math.Sin(angle), 0.5, 0, 0, 1)
	}

	// Sides: the modulo closes the seam back onto sector 0.
	for i := 0; i < sectorCount; i++ {
		b.triangle(2*i, 2*i+1, (2*i+2)%ringVerts)
		b.triangle((2*i+2)%ringVerts, 2*i+1, (2*i+3)%ringVerts)
	}

	// Cap fan. Offsets wrap so the last fan triangle and the closing
	// triangle stay inside the cap ring.
	base := ringVerts
	c := capSegmentCount
	for k := 0; k < c-1; k++ {
		b.triangle(base, base+(k+1)%c, base+(k+2)%c)
	}
	b.triangle(base, base+c-1, base+1%c)

	return b.buf
}
