package viewer

import "github.com/Faultbox/sceneview/pkg/math"

// Clip planes shared by both projections.
const (
	nearPlane = 0.1
	farPlane  = 100.0
)

// ProjectionMode selects how the scene is projected onto the screen.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

// Toggle returns the other mode.
func (m ProjectionMode) Toggle() ProjectionMode {
	if m == Perspective {
		return Orthographic
	}
	return Perspective
}

func (m ProjectionMode) String() string {
	if m == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Projection builds the projection matrix for mode. zoomDeg is the vertical
// field of view used in perspective mode; halfExtent bounds the square
// orthographic volume.
func Projection(mode ProjectionMode, zoomDeg, aspect, halfExtent float32) math.Mat4 {
	if mode == Orthographic {
		return math.Ortho(-halfExtent, halfExtent, -halfExtent, halfExtent, nearPlane, farPlane)
	}
	return math.Perspective(math.Radians(zoomDeg), aspect, nearPlane, farPlane)
}
