package mesh

import (
	"github.com/Faultbox/sceneview/pkg/math"
)

// Sphere builds a UV sphere centered on the origin.
//
// Vertices form a (latitudeDivisions+1) x (longitudeDivisions+1) grid; the
// seam column and the pole rows are duplicated, so pole quads collapse into
// degenerate triangles. Texture coordinates run 1 -> 0 in both directions to
// match the image's vertical convention.
func Sphere(radius float32, latitudeDivisions, longitudeDivisions int) *Buffers {
	cols := longitudeDivisions + 1
	b := newBuilder(LayoutPosTex,
		(latitudeDivisions+1)*cols,
		6*latitudeDivisions*longitudeDivisions)

	for lat := 0; lat <= latitudeDivisions; lat++ {
		theta := float32(lat) * math.Pi / float32(latitudeDivisions)
		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

		for lon := 0; lon <= longitudeDivisions; lon++ {
			phi := float32(lon) * 2 * math.Pi / float32(longitudeDivisions)
			sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

			u := 1 - float32(lon)/float32(longitudeDivisions)
			v := 1 - float32(lat)/float32(latitudeDivisions)

			b.vertex(
				radius*sinTheta*cosPhi,
				radius*cosTheta,
				radius*sinTheta*sinPhi,
				u, v,
			)
		}
	}

	for lat := 0; lat < latitudeDivisions; lat++ {
		for lon := 0; lon < longitudeDivisions; lon++ {
			first := lat*cols + lon
			second := first + cols

			b.triangle(first, second, first+1)
			b.triangle(second, second+1, first+1)
		}
	}

	return b.buf
}
