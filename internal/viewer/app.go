// Package viewer runs the interactive scene: it owns the window, GPU
// resources and camera, and drives the per-frame input/render loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/debug"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/engine/renderer"
	"github.com/Faultbox/sceneview/internal/engine/shader"
	"github.com/Faultbox/sceneview/internal/engine/texture"
	"github.com/Faultbox/sceneview/internal/engine/window"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/pkg/math"
)

// App is the viewer instance.
type App struct {
	controller

	config   *config.Config
	window   window.Window
	renderer *renderer.Renderer
	program  *shader.Program

	textureID uint32
	objects   []SceneObject
	meshes    []*renderer.Mesh
	light     lighting.PointLight

	screenshots *debug.ScreenshotCapture
}

// New creates the window, GL state and scene resources.
func New(cfg *config.Config) (*App, error) {
	backend, err := window.ParseBackend(cfg.Graphics.Backend)
	if err != nil {
		return nil, err
	}

	logger.Info("initializing viewer",
		zap.String("backend", string(backend)),
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		config:      cfg,
		objects:     SceneObjects(),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "sceneview"),
	}
	a.light = lighting.PointLight{
		Position: vec3(cfg.Scene.LightPosition),
		Color:    vec3(cfg.Scene.LightColor),
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Backend:      backend,
		Title:        cfg.Graphics.Title,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		CaptureMouse: cfg.Camera.CaptureMouse,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbWidth, fbHeight := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: fbWidth, Height: fbHeight})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.loadResources(); err != nil {
		a.Close()
		return nil, err
	}

	a.controller = controller{
		camera: camera.NewFlyCameraWithOptions(vec3(cfg.Camera.Position), camera.Options{
			MovementSpeed:    cfg.Camera.Speed,
			MouseSensitivity: cfg.Camera.Sensitivity,
			Zoom:             cfg.Camera.Zoom,
		}),
		projection: Perspective,
		onResize:   a.renderer.Resize,
	}

	logger.Info("viewer initialized successfully")
	return a, nil
}

// loadResources compiles the shader, uploads the texture and builds the meshes.
func (a *App) loadResources() error {
	var err error
	a.program, err = shader.New(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}

	img, err := texture.Load(a.config.Scene.TexturePath)
	if err != nil {
		return fmt.Errorf("failed to load texture: %w", err)
	}
	img.FlipVertical()
	a.textureID = texture.Upload(img)
	logger.Info("texture loaded",
		zap.String("path", a.config.Scene.TexturePath),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
	)

	for _, obj := range a.objects {
		b := obj.Shape.Build(a.config.Scene)
		m, err := a.renderer.Upload(b)
		if err != nil {
			return fmt.Errorf("failed to upload %s mesh: %w", obj.Shape, err)
		}
		a.meshes = append(a.meshes, m)

		lo, hi := obj.WorldBounds(b)
		logger.Debug("mesh uploaded",
			zap.Stringer("shape", obj.Shape),
			zap.Int("vertices", b.VertexCount()),
			zap.Int("indices", b.IndexCount()),
			zap.Any("min", lo),
			zap.Any("max", hi),
		)
	}
	return nil
}

// Run starts the render loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		frame := a.window.Poll()
		a.HandleFrame(&frame, dt)
		if !a.running {
			break
		}

		// 2. Render
		a.render()

		// Read back before the swap invalidates the back buffer.
		if a.screenshotPending {
			a.screenshotPending = false
			a.captureScreenshot()
		}

		// 3. Present
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			logger.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			if a.config.Graphics.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", a.config.Graphics.Title, fps))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// render draws every scene object with the current camera and projection.
func (a *App) render() {
	a.renderer.Begin()

	a.program.Use()
	a.program.SetMat4("view", a.camera.ViewMatrix())
	a.program.SetMat4("projection", Projection(a.projection, a.camera.Zoom, a.renderer.Aspect(), a.config.Scene.OrthoHalfExtent))
	a.light.Apply(a.program)
	a.program.SetInt("textureSampler", 0)
	texture.Bind(a.textureID, 0)

	for i, obj := range a.objects {
		a.program.SetMat4("model", obj.Model)
		a.program.SetBool("planarUV", obj.PlanarUV)
		a.meshes[i].Draw()
	}
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window. Safe on a partially built App.
func (a *App) Close() {
	logger.Info("closing viewer")

	for _, m := range a.meshes {
		m.Delete()
	}
	a.meshes = nil

	texture.Delete(a.textureID)
	a.textureID = 0

	if a.program != nil {
		a.program.Delete()
		a.program = nil
	}
	a.renderer = nil
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
