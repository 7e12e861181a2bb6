package main

import (
	"flag"
	"fmt"
	"os"

	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/control"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/window"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	size := flag.Int("size", 0, "Square window size in pixels (default: 1000)")
	smooth := flag.Bool("smooth", false, "Anti-aliased lines")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Size: *size})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc, tl := cfg.BuildScene()
	bg, fg := cfg.Colors()
	loop := control.NewLoop(sc, tl, mathutil.Deg2Rad(1))

	fmt.Println("Arrows/Q/E aim the camera, R resets, Space pauses, Esc quits")
	err := window.Run(loop, window.Options{
		Title:    "wireframe",
		Viewport: cfg.Viewport(),
		TPS:      cfg.FPS,
		BG:       bg,
		FG:       fg,
		Smooth:   *smooth,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
