package input

import "github.com/Faultbox/sceneview/pkg/math"

// CursorTracker turns absolute cursor positions into frame deltas.
// The first sample only seeds the tracker so the camera does not jump.
type CursorTracker struct {
	lastX, lastY float64
	seeded       bool
}

// Move feeds an absolute position and returns the delta from the last one,
// with Y reversed so that moving the cursor up is positive.
func (c *CursorTracker) Move(x, y float64) math.Vec2 {
	if !c.seeded {
		c.lastX, c.lastY = x, y
		c.seeded = true
	}
	d := math.Vec2{X: float32(x - c.lastX), Y: float32(c.lastY - y)}
	c.lastX, c.lastY = x, y
	return d
}

// Reset forgets the last position; the next Move is treated as the first.
func (c *CursorTracker) Reset() {
	c.seeded = false
}
