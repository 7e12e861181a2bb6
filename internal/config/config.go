package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"runtime"

	"wireframe-renderer/internal/anim"
	"wireframe-renderer/internal/encode"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/postprocess"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/scene"
)

// Config holds scene, output and render settings.
type Config struct {
	// Output
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	Animate   bool   `json:"animate"`

	// Render settings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Filter      string `json:"filter"`
	Frames      int    `json:"frames"`
	FPS         int    `json:"fps"`
	Workers     int    `json:"workers"`
	HUD         bool   `json:"hud"`
	Background  string `json:"background"`
	Foreground  string `json:"foreground"`

	Camera CameraConfig `json:"camera"`
	Meshes []MeshConfig `json:"meshes"`
}

// CameraConfig places the camera. Angles are in degrees.
type CameraConfig struct {
	Position [3]float64  `json:"position"`
	FOV      float64     `json:"fov"`
	Rotation *[3]float64 `json:"rotation"`
}

// MeshConfig describes one cube. Spin is in radians per frame so the
// reference rates can be given exactly.
type MeshConfig struct {
	Side     float64    `json:"side"`
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
	Spin     [3]float64 `json:"spin"`
}

// Reference scene values.
var (
	DefaultCameraRotation = [3]float64{0, 0, 180}
	DefaultSpin           = [3]float64{0.012, 0.014, -0.016}
	DefaultMesh           = MeshConfig{Side: 1, Position: [3]float64{0, 0, 2.5}, Spin: DefaultSpin}
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Size      int
	Frames    int
	Workers   int
	Animate   bool
	HUD       bool
}

// Resolve fills in any empty fields with the reference scene defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.Width, c.Height = flags.Size, flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Animate {
		c.Animate = true
	}
	if flags.HUD {
		c.HUD = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = string(encode.WebP)
	}
	if c.Width <= 0 {
		c.Width = scene.ReferenceViewport.Width
	}
	if c.Height <= 0 {
		c.Height = scene.ReferenceViewport.Height
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Background == "" {
		c.Background = "#000000"
	}
	if c.Foreground == "" {
		c.Foreground = "#ffffff"
	}

	if c.Camera.FOV == 0 {
		c.Camera.FOV = mathutil.Rad2Deg(mathutil.ReferenceFOV)
	}
	if c.Camera.Rotation == nil {
		r := DefaultCameraRotation
		c.Camera.Rotation = &r
	}
	if len(c.Meshes) == 0 {
		c.Meshes = []MeshConfig{DefaultMesh}
	}
	for i := range c.Meshes {
		if c.Meshes[i].Side == 0 {
			c.Meshes[i].Side = DefaultMesh.Side
		}
	}
}

// Validate checks caller preconditions the math core does not guard.
func (c *Config) Validate() error {
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("config: fov %.2f° outside (0, 180)", c.Camera.FOV)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: viewport %dx%d", c.Width, c.Height)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d exceeds 8", c.Supersample)
	}
	if _, err := encode.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Animate && c.Format != string(encode.WebP) {
		return fmt.Errorf("config: animation requires webp, got %s", c.Format)
	}
	if _, err := postprocess.Filter(c.Filter); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := raster.ParseColor(c.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if _, err := raster.ParseColor(c.Foreground); err != nil {
		return fmt.Errorf("config: foreground: %w", err)
	}
	for i, m := range c.Meshes {
		if m.Side <= 0 {
			return fmt.Errorf("config: mesh %d: side %v", i, m.Side)
		}
	}
	return nil
}

// Viewport is the output frame size.
func (c *Config) Viewport() scene.Viewport {
	return scene.Viewport{Width: c.Width, Height: c.Height}
}

// Colors returns the parsed background and foreground. Call after Validate.
func (c *Config) Colors() (bg, fg color.RGBA) {
	bg, _ = raster.ParseColor(c.Background)
	fg, _ = raster.ParseColor(c.Foreground)
	return bg, fg
}

// BuildScene creates the camera, one cube per mesh entry and a timeline
// spinning each cube at its configured rate.
func (c *Config) BuildScene() (scene.Scene, anim.Timeline) {
	rot := *c.Camera.Rotation
	cam := scene.NewCamera(
		vec(c.Camera.Position),
		mathutil.Deg2Rad(c.Camera.FOV),
		mathutil.V3(mathutil.Deg2Rad(rot[0]), mathutil.Deg2Rad(rot[1]), mathutil.Deg2Rad(rot[2])),
	)

	sc := scene.Scene{Camera: cam}
	var tl anim.Timeline
	for _, mc := range c.Meshes {
		m := scene.NewMesh(vec(mc.Position), scene.GenCube(mc.Side))
		m.Rotation = vec(mc.Rotation)
		sc.Meshes = append(sc.Meshes, m)
		if mc.Spin != [3]float64{} {
			tl = append(tl, anim.Spinner{Target: m, Rate: vec(mc.Spin)})
		}
	}
	return sc, tl
}

func vec(a [3]float64) mathutil.Vec3 {
	return mathutil.V3(a[0], a[1], a[2])
}
