package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/input"
	"github.com/Faultbox/sceneview/internal/logger"
)

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyW:      input.KeyW,
	glfw.KeyA:      input.KeyA,
	glfw.KeyS:      input.KeyS,
	glfw.KeyD:      input.KeyD,
	glfw.KeyQ:      input.KeyQ,
	glfw.KeyE:      input.KeyE,
	glfw.KeyP:      input.KeyP,
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeyF12:    input.KeyF12,
}

func glfwButton(b glfw.MouseButton) input.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle
	case glfw.MouseButtonRight:
		return input.ButtonRight
	default:
		return input.ButtonOther
	}
}

// glfwWindow wraps a GLFW window. GLFW only offers callbacks, so they write
// into the pending frame and Poll hands it out after glfw.PollEvents returns.
type glfwWindow struct {
	config  Config
	win     *glfw.Window
	frame   input.Frame
	tracker input.CursorTracker
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	w := &glfwWindow{
		config: cfg,
	}

	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, glMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, glMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	var err error
	w.win, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	w.win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if cfg.CaptureMouse {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if k, ok := glfwKeys[key]; ok {
			w.frame.SetKey(k, action != glfw.Release)
		}
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.frame.CursorDelta = w.frame.CursorDelta.Add(w.tracker.Move(xpos, ypos))
	})
	// Re-entry would otherwise report the jump from the exit point as motion.
	w.win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.tracker.Reset()
		}
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.frame.Scroll.X += float32(xoff)
		w.frame.Scroll.Y += float32(yoff)
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		w.frame.AddButton(glfwButton(button), action == glfw.Press)
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.frame.Resize(width, height)
	})

	logger.Info("window created",
		zap.String("backend", string(BackendGLFW)),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Poll processes pending GLFW events and returns the collected frame.
func (w *glfwWindow) Poll() input.Frame {
	glfw.PollEvents()

	f := w.frame
	if w.win.ShouldClose() {
		f.Quit = true
	}
	w.frame = f.Next()
	return f
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	logger.Info("closing window")

	if w.win != nil {
		w.win.Destroy()
	}
	glfw.Terminate()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

// Size returns the window size in screen coordinates.
func (w *glfwWindow) Size() (int, int) {
	return w.win.GetSize()
}

// DrawableSize returns the framebuffer size in pixels.
func (w *glfwWindow) DrawableSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// SetTitle sets the window title.
func (w *glfwWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}
