package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wireframe-renderer/internal/anim"
	"wireframe-renderer/internal/batch"
	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/encode"
	"wireframe-renderer/internal/postprocess"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	size := flag.Int("size", 0, "Square viewport size in pixels (default: 1000)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Frame format: webp, png, bmp, tga (default: webp)")
	animate := flag.Bool("animate", false, "Write one animated WebP instead of frame files")
	hud := flag.Bool("hud", false, "Overlay frame number and rotation")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
		Animate:   *animate,
		HUD:       *hud,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc, tl := cfg.BuildScene()
	snapshots := anim.Snapshots(sc, tl, cfg.Frames)

	f, _ := encode.ParseFormat(cfg.Format)
	filter, _ := postprocess.Filter(cfg.Filter)
	bg, fg := cfg.Colors()

	// Print summary
	mode := ""
	if cfg.Animate {
		mode = " (animated)"
	}
	fmt.Printf("Wireframe renderer → %s%s\n", f, mode)
	fmt.Printf("Frames: %d, Viewport: %dx%d, Supersample: %dx, Workers: %d\n",
		cfg.Frames, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Meshes: %d, Edges/frame: %d\n", len(sc.Meshes), sc.EdgeCount())
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      f,
		Animate:     cfg.Animate,
		Viewport:    cfg.Viewport(),
		Supersample: cfg.Supersample,
		Filter:      filter,
		FrameDelay:  time.Second / time.Duration(cfg.FPS),
		Workers:     cfg.Workers,
		HUD:         cfg.HUD,
		BG:          bg,
		FG:          fg,
	}

	results := batch.Run(batchCfg, snapshots)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed, skipped := 0, 0, 0
	var errors []batch.Result
	for _, r := range results {
		skipped += r.Skipped
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))
	if skipped > 0 {
		fmt.Printf("Edges skipped (no finite projection): %d\n", skipped)
	}

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(batchCfg, results)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
