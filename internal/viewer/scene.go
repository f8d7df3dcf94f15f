package viewer

import (
	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/mesh"
	"github.com/Faultbox/sceneview/pkg/math"
)

// Shape is one of the procedural meshes the viewer draws.
type Shape int

const (
	ShapeCylinder Shape = iota
	ShapeSphere
	ShapePlane
)

func (s Shape) String() string {
	switch s {
	case ShapeCylinder:
		return "cylinder"
	case ShapeSphere:
		return "sphere"
	case ShapePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Mesh dimensions.
const (
	cylinderRadius = 0.5
	cylinderHeight = 1.0
	sphereRadius   = 0.25
)

// Build generates the CPU-side buffers for s.
func (s Shape) Build(sc config.SceneConfig) *mesh.Buffers {
	switch s {
	case ShapeCylinder:
		return mesh.Cylinder(cylinderRadius, cylinderHeight, sc.CylinderSectors, sc.CylinderCapSegs)
	case ShapeSphere:
		return mesh.Sphere(sphereRadius, sc.SphereLatitudes, sc.SphereLongitudes)
	default:
		return mesh.Plane()
	}
}

// SceneObject is a shape placed in the world.
type SceneObject struct {
	Shape Shape
	Model math.Mat4
	// PlanarUV derives texture coordinates from object-space X/Y in the
	// vertex shader instead of reading the mesh's UV attribute.
	PlanarUV bool
}

// WorldBounds returns the world-space box enclosing b once placed by the
// object's model matrix.
func (o SceneObject) WorldBounds(b *mesh.Buffers) (min, max math.Vec3) {
	lo, hi := b.Bounds()
	for i := 0; i < 8; i++ {
		corner := math.Vec3{X: lo[0], Y: lo[1], Z: lo[2]}
		if i&1 != 0 {
			corner.X = hi[0]
		}
		if i&2 != 0 {
			corner.Y = hi[1]
		}
		if i&4 != 0 {
			corner.Z = hi[2]
		}
		p := o.Model.TransformVec3(corner)
		if i == 0 {
			min, max = p, p
			continue
		}
		min = math.Vec3{X: min32(min.X, p.X), Y: min32(min.Y, p.Y), Z: min32(min.Z, p.Z)}
		max = math.Vec3{X: max32(max.X, p.X), Y: max32(max.Y, p.Y), Z: max32(max.Z, p.Z)}
	}
	return min, max
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// SceneObjects returns the fixed scene in draw order.
func SceneObjects() []SceneObject {
	return []SceneObject{
		{
			Shape:    ShapeCylinder,
			Model:    math.Translate(1.5, 0, 0).Mul(math.Scale(0.5, 0.5, 0.5)),
			PlanarUV: true,
		},
		{
			Shape: ShapeSphere,
			Model: math.Translate(1.5, 0.1, 0),
		},
		{
			Shape: ShapePlane,
			Model: math.Translate(0, -0.25, 0).Mul(math.Scale(4, 2, 2)),
		},
	}
}
