package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/control"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/termview"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
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
	cfg.Resolve(config.Flags{})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	screen.HideCursor()

	sc, tl := cfg.BuildScene()
	_, fg := cfg.Colors()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))

	loop := control.NewLoop(sc, tl, mathutil.Deg2Rad(5))
	termview.Run(screen, loop, time.Second/time.Duration(cfg.FPS), style)
	screen.Fini()
}
