// Package camera provides the first-person fly camera used by the viewer.
package camera

import (
	"github.com/Faultbox/sceneview/pkg/math"
)

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Default camera values.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0
)

// Orientation and zoom limits, in degrees.
const (
	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// Options overrides the tunable camera constants. Zero fields keep defaults.
type Options struct {
	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

// FlyCamera is a yaw/pitch camera that flies freely through the scene.
//
// Front, Right and Up are derived from Yaw, Pitch and WorldUp and are
// recomputed after every orientation change; do not set them directly.
type FlyCamera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3
	Right    math.Vec3
	WorldUp  math.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	// Vertical field of view in degrees
	Zoom float32

	MovementSpeed    float32 // world units per second
	MouseSensitivity float32 // degrees per pixel
}

// NewFlyCamera creates a camera at position looking down -Z.
func NewFlyCamera(position math.Vec3) *FlyCamera {
	return NewFlyCameraWithOptions(position, Options{})
}

// NewFlyCameraWithOptions creates a camera at position with custom tuning.
func NewFlyCameraWithOptions(position math.Vec3, opts Options) *FlyCamera {
	c := &FlyCamera{
		Position:         position,
		WorldUp:          math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		Zoom:             DefaultZoom,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
	}
	if opts.MovementSpeed > 0 {
		c.MovementSpeed = opts.MovementSpeed
	}
	if opts.MouseSensitivity > 0 {
		c.MouseSensitivity = opts.MouseSensitivity
	}
	if opts.Zoom > 0 {
		c.Zoom = math.Clamp(opts.Zoom, MinZoom, MaxZoom)
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the look-at transform for the current position and basis.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera for deltaTime seconds.
// Forward and Backward follow the full 3D look direction, so looking up and
// pressing forward climbs.
func (c *FlyCamera) ProcessKeyboard(dir Direction, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime

	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Scale(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Scale(velocity))
	case Up:
		c.Position = c.Position.Add(c.Up.Scale(velocity))
	case Down:
		c.Position = c.Position.Sub(c.Up.Scale(velocity))
	}
}

// ProcessMouseMovement turns the camera by a cursor delta in pixels.
// Positive yoffset looks up.
func (c *FlyCamera) ProcessMouseMovement(xoffset, yoffset float32) {
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity

	// Past 90 degrees the basis flips.
	c.Pitch = math.Clamp(c.Pitch, -MaxPitch, MaxPitch)

	c.updateVectors()
}

// ProcessMouseScroll narrows (positive yoffset) or widens the field of view.
func (c *FlyCamera) ProcessMouseScroll(yoffset float32) {
	c.Zoom = math.Clamp(c.Zoom-yoffset, MinZoom, MaxZoom)
}

// updateVectors rebuilds Front, Right and Up from the Euler angles.
func (c *FlyCamera) updateVectors() {
	yaw := math.Radians(c.Yaw)
	pitch := math.Radians(c.Pitch)

	c.Front = math.Vec3{
		X: math.Cos(pitch) * math.Cos(yaw),
		Y: math.Sin(pitch),
		Z: math.Cos(pitch) * math.Sin(yaw),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
