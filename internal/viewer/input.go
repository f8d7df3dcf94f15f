package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/input"
	"github.com/Faultbox/sceneview/internal/logger"
)

// moveKeys maps held keys to camera movement in the order they are applied.
var moveKeys = []struct {
	key input.Key
	dir camera.Direction
}{
	{input.KeyW, camera.Forward},
	{input.KeyS, camera.Backward},
	{input.KeyA, camera.Left},
	{input.KeyD, camera.Right},
	{input.KeyQ, camera.Up},
	{input.KeyE, camera.Down},
}

// controller is the GL-free part of the app state that input acts on.
type controller struct {
	camera     *camera.FlyCamera
	projection ProjectionMode
	running    bool

	// screenshotPending is consumed by the render loop after drawing.
	screenshotPending bool

	onResize func(width, height int)
}

// HandleFrame applies one frame of input. dt is the frame time in seconds.
func (c *controller) HandleFrame(f *input.Frame, dt float32) {
	if f.Quit || f.Held(input.KeyEscape) {
		c.running = false
		return
	}

	if f.Resized && c.onResize != nil {
		c.onResize(f.Width, f.Height)
	}

	for _, mk := range moveKeys {
		if f.Held(mk.key) {
			c.camera.ProcessKeyboard(mk.dir, dt)
		}
	}

	if f.Pressed(input.KeyP) {
		c.projection = c.projection.Toggle()
		logger.Info("projection changed", zap.Stringer("mode", c.projection))
	}

	if f.Pressed(input.KeyF12) {
		c.screenshotPending = true
	}

	if !f.CursorDelta.IsZero() {
		c.camera.ProcessMouseMovement(f.CursorDelta.X, f.CursorDelta.Y)
	}
	if f.Scroll.Y != 0 {
		c.camera.ProcessMouseScroll(f.Scroll.Y)
	}

	for _, ev := range f.Buttons {
		logButton(ev)
	}
}

func logButton(ev input.ButtonEvent) {
	if ev.Button == input.ButtonOther {
		logger.Debug("unhandled mouse button event")
		return
	}
	if ev.Pressed {
		logger.Debug("mouse button pressed", zap.Stringer("button", ev.Button))
	} else {
		logger.Debug("mouse button released", zap.Stringer("button", ev.Button))
	}
}
