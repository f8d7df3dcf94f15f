// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	TexturePath      string     `yaml:"texture_path"`
	CylinderSectors  int        `yaml:"cylinder_sectors"`
	CylinderCapSegs  int        `yaml:"cylinder_cap_segments"`
	SphereLatitudes  int        `yaml:"sphere_latitudes"`
	SphereLongitudes int        `yaml:"sphere_longitudes"`
	OrthoHalfExtent  float32    `yaml:"ortho_half_extent"`
	LightPosition    [3]float32 `yaml:"light_position"`
	LightColor       [3]float32 `yaml:"light_color"`
}

// CameraConfig holds fly camera settings.
type CameraConfig struct {
	Position     [3]float32 `yaml:"position"`
	Speed        float32    `yaml:"speed"`
	Sensitivity  float32    `yaml:"sensitivity"`
	Zoom         float32    `yaml:"zoom"`
	CaptureMouse bool       `yaml:"capture_mouse"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Backend: "sdl",
			Title:   "3D scene",
			Width:   800,
			Height:  600,
			VSync:   true,
		},
		Scene: SceneConfig{
			TexturePath:      "texture.jpg",
			CylinderSectors:  36,
			CylinderCapSegs:  36,
			SphereLatitudes:  36,
			SphereLongitudes: 36,
			OrthoHalfExtent:  5,
			LightPosition:    [3]float32{1, 1, 1},
			LightColor:       [3]float32{1.0, 0.95, 0.5},
		},
		Camera: CameraConfig{
			Position:     [3]float32{0, 0, 3},
			Speed:        2.5,
			Sensitivity:  0.1,
			Zoom:         45,
			CaptureMouse: true,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the viewer cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Scene.CylinderSectors < 3 {
		errs = append(errs, fmt.Errorf("cylinder_sectors %d: need at least 3", c.Scene.CylinderSectors))
	}
	if c.Scene.CylinderCapSegs < 3 {
		errs = append(errs, fmt.Errorf("cylinder_cap_segments %d: need at least 3", c.Scene.CylinderCapSegs))
	}
	if c.Scene.SphereLatitudes < 2 || c.Scene.SphereLongitudes < 3 {
		errs = append(errs, fmt.Errorf("sphere divisions %dx%d: need at least 2x3",
			c.Scene.SphereLatitudes, c.Scene.SphereLongitudes))
	}
	if c.Scene.OrthoHalfExtent <= 0 {
		errs = append(errs, fmt.Errorf("ortho_half_extent %v must be positive", c.Scene.OrthoHalfExtent))
	}
	if c.Scene.TexturePath == "" {
		errs = append(errs, errors.New("texture_path is empty"))
	}
	return errors.Join(errs...)
}
