// Package window creates the OS window and OpenGL context and turns platform
// events into per-frame input snapshots.
package window

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Faultbox/sceneview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend selects the windowing library.
type Backend string

const (
	BackendSDL  Backend = "sdl"
	BackendGLFW Backend = "glfw"
)

// OpenGL context version requested from every backend.
const (
	glMajor = 4
	glMinor = 1
)

// ParseBackend maps a config string to a Backend. Empty selects SDL.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendSDL:
		return BackendSDL, nil
	case BackendGLFW:
		return BackendGLFW, nil
	default:
		return "", fmt.Errorf("unknown window backend %q (want sdl or glfw)", s)
	}
}

// Config holds window configuration.
type Config struct {
	Backend      Backend
	Title        string
	Width        int
	Height       int
	Fullscreen   bool
	VSync        bool
	CaptureMouse bool
}

// Window is an OS window with a current OpenGL context.
type Window interface {
	input.Source

	SwapBuffers()
	Size() (int, int)
	DrawableSize() (int, int)
	SetTitle(title string)
	Close()
}

// New creates a window with an OpenGL 4.1 core context using cfg.Backend.
func New(cfg Config) (Window, error) {
	backend, err := ParseBackend(string(cfg.Backend))
	if err != nil {
		return nil, err
	}

	// Keep failed constructors from leaking typed nil pointers into the interface.
	switch backend {
	case BackendGLFW:
		w, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		w, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
}
