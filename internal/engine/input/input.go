// Package input defines the backend-neutral, per-frame input snapshot.
//
// Window backends drain their platform event queue once per frame into a
// Frame; consumers read it synchronously. Nothing here registers callbacks.
package input

import (
	"github.com/Faultbox/sceneview/pkg/math"
)

// Key identifies a keyboard key the viewer cares about.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyP
	KeyEscape
	KeyF12
	keyCount
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeyQ:       "Q",
	KeyE:       "E",
	KeyP:       "P",
	KeyEscape:  "Escape",
	KeyF12:     "F12",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
	ButtonOther
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "other"
	}
}

// ButtonEvent is a mouse button transition.
type ButtonEvent struct {
	Button  MouseButton
	Pressed bool
}

// Frame is everything that happened since the previous poll.
type Frame struct {
	held    [keyCount]bool
	pressed [keyCount]bool

	// CursorDelta is the cursor motion in pixels; +Y is up.
	CursorDelta math.Vec2
	// Scroll is the accumulated wheel offset; +Y scrolls away from the user.
	Scroll math.Vec2

	Buttons []ButtonEvent

	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Held reports whether k is down at the end of the frame.
func (f *Frame) Held(k Key) bool {
	return k > KeyUnknown && k < keyCount && f.held[k]
}

// Pressed reports whether k went down during the frame.
func (f *Frame) Pressed(k Key) bool {
	return k > KeyUnknown && k < keyCount && f.pressed[k]
}

// SetKey records a key transition.
func (f *Frame) SetKey(k Key, down bool) {
	if k <= KeyUnknown || k >= keyCount {
		return
	}
	if down && !f.held[k] {
		f.pressed[k] = true
	}
	f.held[k] = down
}

// AddButton records a mouse button transition.
func (f *Frame) AddButton(b MouseButton, pressed bool) {
	f.Buttons = append(f.Buttons, ButtonEvent{Button: b, Pressed: pressed})
}

// Resize records a framebuffer resize.
func (f *Frame) Resize(width, height int) {
	f.Resized = true
	f.Width = width
	f.Height = height
}

// Next returns a fresh frame that keeps the held-key state of f
// and reuses its button slice.
func (f *Frame) Next() Frame {
	return Frame{
		held:    f.held,
		Buttons: f.Buttons[:0],
	}
}

// Source delivers one Frame per call. Poll must not block beyond draining
// pending platform events.
type Source interface {
	Poll() Frame
}
