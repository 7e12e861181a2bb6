package batch

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"wireframe-renderer/internal/encode"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/postprocess"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/scene"

	"golang.org/x/image/draw"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Format      encode.Format
	Animate     bool
	Viewport    scene.Viewport
	Supersample int
	Filter      draw.Interpolator
	FrameDelay  time.Duration
	Workers     int
	HUD         bool
	BG, FG      color.RGBA

	// Progress is called every two seconds while frames are rendering.
	// Nil prints to stdout.
	Progress func(done, total int, rate float64)
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame    int
	Path     string
	Rotation mathutil.Vec3 // first mesh rotation, radians
	Edges    int
	Skipped  int // edges rejected at the pixel boundary
	Success  bool
	Error    string

	img image.Image
}

// Run renders every frame using a worker pool. In animate mode the frames are
// kept in memory and written as one animated WebP after the pool drains.
func Run(cfg Config, frames []scene.Scene) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 1
	}
	if cfg.Filter == nil {
		cfg.Filter = draw.CatmullRom
	}
	progress := cfg.Progress
	if progress == nil {
		progress = func(done, total int, rate float64) {
			fmt.Printf("  [%d/%d] %.1f frames/sec\n", done, total, rate)
		}
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					progress(int(p), total, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, idx, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	if cfg.Animate {
		writeAnimation(cfg, results)
	}
	for i := range results {
		results[i].img = nil
	}

	return results
}

// RenderFrame draws sc into a fresh image at the configured viewport,
// supersampling and HUD settings. It also returns the number of edges drawn.
func RenderFrame(cfg Config, index int, sc scene.Scene) (*image.RGBA, int) {
	ss := cfg.Supersample
	if ss <= 0 {
		ss = 1
	}
	vp := cfg.Viewport.Scaled(ss)
	canvas := raster.NewCanvas(vp.Width, vp.Height, cfg.BG, cfg.FG)
	edges := sc.Draw(canvas, vp)

	img := canvas.Image()
	if ss > 1 {
		filter := cfg.Filter
		if filter == nil {
			filter = draw.CatmullRom
		}
		img = postprocess.Downsample(img, cfg.Viewport.Width, cfg.Viewport.Height, filter)
	}

	if cfg.HUD {
		raster.Label(img, 4, 8, hudText(index, sc), cfg.FG)
	}
	return img, edges
}

func hudText(index int, sc scene.Scene) string {
	s := fmt.Sprintf("F %d", index)
	if len(sc.Meshes) > 0 {
		r := sc.Meshes[0].Rotation
		s += fmt.Sprintf("\nR %.2f %.2f %.2f",
			mathutil.WrapAngle(r.X), mathutil.WrapAngle(r.Y), mathutil.WrapAngle(r.Z))
	}
	return s
}

func processFrame(cfg Config, index int, sc scene.Scene) Result {
	res := Result{Frame: index}
	if len(sc.Meshes) > 0 {
		res.Rotation = sc.Meshes[0].Rotation
	}

	img, edges := RenderFrame(cfg, index, sc)
	res.Edges = edges
	res.Skipped = sc.EdgeCount() - edges

	if cfg.Animate {
		res.img = img
		res.Path = AnimationName
		res.Success = true
		return res
	}

	res.Path = FrameName(index, cfg.Format)
	if err := encode.WriteFile(filepath.Join(cfg.OutputDir, res.Path), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

func writeAnimation(cfg Config, results []Result) {
	imgs := make([]image.Image, len(results))
	for i, r := range results {
		imgs[i] = r.img
	}

	err := encode.WriteAnimation(filepath.Join(cfg.OutputDir, AnimationName), imgs, cfg.FrameDelay)
	if err == nil {
		return
	}
	for i := range results {
		results[i].Success = false
		results[i].Error = err.Error()
	}
}

// AnimationName is the file written in animate mode.
const AnimationName = "animation.webp"

// FrameName is the file name of frame index, relative to the output directory.
func FrameName(index int, f encode.Format) string {
	return fmt.Sprintf("frame_%04d%s", index, f.Ext())
}
